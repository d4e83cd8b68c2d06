package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithContent fills the buffer with s. The cursor is placed past the end.
// CRLF and CR line endings are converted to LF.
func WithContent(s string) Option {
	return func(b *Buffer) {
		b.initContent = s
	}
}

// normalizeLineEndings converts CRLF and CR line endings to LF, the only
// line ending the buffer understands.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
