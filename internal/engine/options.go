package engine

import (
	"github.com/rs/zerolog"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
// The cursor starts past the end. Content is loaded as given apart from
// CRLF and CR line endings, which become LF. Only text added with insert is
// NFC normalized.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithID sets the engine ID instead of generating one.
func WithID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.id = id
		}
	}
}
