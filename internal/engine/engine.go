package engine

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/sjson"
	"golang.org/x/text/unicode/norm"

	"github.com/saibendi/p4-editor/internal/engine/buffer"
)

// Re-export commonly used types for convenience.
type (
	// Point holds cursor coordinates.
	Point = buffer.Point

	// Snapshot is a read-only view of the buffer.
	Snapshot = buffer.Snapshot

	// RevisionID identifies a content revision.
	RevisionID = buffer.RevisionID
)

// Engine drives a single cursor buffer through named commands.
type Engine struct {
	id  string
	buf *buffer.Buffer
	log zerolog.Logger

	initContent string
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:  uuid.New().String(),
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.New(buffer.WithContent(e.initContent))
	e.initContent = ""
	e.log = e.log.With().Str("engine", e.id).Logger()

	return e
}

// ID returns the engine ID.
func (e *Engine) ID() string {
	return e.id
}

// Buffer returns the underlying buffer. Front ends use it for reading; all
// edits should go through Do so they are traced.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Text returns the buffer content.
func (e *Engine) Text() string {
	return e.buf.String()
}

// Point returns the cursor coordinates.
func (e *Engine) Point() Point {
	return e.buf.Point()
}

// Snapshot returns a read-only view of the buffer.
func (e *Engine) Snapshot() *Snapshot {
	return e.buf.Snapshot()
}

// Exec parses line and runs it.
func (e *Engine) Exec(line string) (Result, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return Result{}, err
	}
	return e.Do(cmd)
}

// Do runs a command against the buffer.
func (e *Engine) Do(cmd Command) (Result, error) {
	if err := cmd.validate(); err != nil {
		return Result{}, err
	}

	ok := true
	switch cmd.Op {
	case OpForward:
		ok = e.buf.Forward()
	case OpBackward:
		ok = e.buf.Backward()
	case OpRemove:
		ok = e.buf.Remove()
	case OpInsert:
		e.buf.InsertString(norm.NFC.String(cmd.Arg))
	case OpRowStart:
		e.buf.MoveToRowStart()
	case OpRowEnd:
		e.buf.MoveToRowEnd()
	case OpColumn:
		n, _ := strconv.Atoi(cmd.Arg)
		e.buf.MoveToColumn(n)
	case OpUp:
		ok = e.buf.Up()
	case OpDown:
		ok = e.buf.Down()
	case OpReset:
		e.buf.Reset()
	case OpStart:
		e.buf.MoveToStart()
	}

	res := Result{OK: ok, Point: e.buf.Point()}
	e.log.Debug().
		Str("cmd", string(cmd.Op)).
		Bool("ok", ok).
		Int("index", res.Point.Index).
		Int("row", res.Point.Row).
		Int("col", res.Point.Column).
		Int("size", e.buf.Len()).
		Msg("command")

	return res, nil
}

// StateJSON renders the buffer content and cursor as a JSON object with the
// keys id, text, index, row, column, size and at_end.
func (e *Engine) StateJSON() (string, error) {
	p := e.buf.Point()
	fields := []struct {
		path  string
		value any
	}{
		{"id", e.id},
		{"text", e.buf.String()},
		{"index", p.Index},
		{"row", p.Row},
		{"column", p.Column},
		{"size", e.buf.Len()},
		{"at_end", e.buf.IsAtEnd()},
	}

	out := "{}"
	for _, f := range fields {
		var err error
		out, err = sjson.Set(out, f.path, f.value)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}
