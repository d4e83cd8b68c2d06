package backend

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/saibendi/p4-editor/internal/config"
	"github.com/saibendi/p4-editor/internal/engine"
)

// Terminal renders an engine's buffer on a tcell screen and feeds key
// presses back to it as commands.
type Terminal struct {
	screen tcell.Screen
	eng    *engine.Engine
	keymap *Keymap
	log    zerolog.Logger

	tabWidth    int
	showStatus  bool
	statusStyle tcell.Style
	textStyle   tcell.Style

	// First buffer row shown at the top of the screen.
	top int
}

// NewTerminal creates a terminal front end. The screen is not initialized
// until Init is called.
func NewTerminal(screen tcell.Screen, eng *engine.Engine, cfg *config.Config, log zerolog.Logger) (*Terminal, error) {
	km, err := NewKeymap(cfg.Keys)
	if err != nil {
		return nil, err
	}
	fg, bg, err := cfg.Theme.Colors()
	if err != nil {
		return nil, err
	}

	r, g, b := fg.RGB255()
	fgColor := tcell.NewRGBColor(int32(r), int32(g), int32(b))
	r, g, b = bg.RGB255()
	bgColor := tcell.NewRGBColor(int32(r), int32(g), int32(b))

	return &Terminal{
		screen:      screen,
		eng:         eng,
		keymap:      km,
		log:         log,
		tabWidth:    cfg.Editor.TabWidth,
		showStatus:  cfg.Editor.ShowStatus,
		statusStyle: tcell.StyleDefault.Foreground(fgColor).Background(bgColor),
		textStyle:   tcell.StyleDefault,
		top:         1,
	}, nil
}

// Init initializes the screen and moves the cursor to the start of the
// buffer.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	t.do(engine.Command{Op: engine.OpStart})
	t.top = 1
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Run draws the buffer and processes events until a quit key is pressed or
// ctx is cancelled. Init must have been called.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if quit := t.HandleEvent(ev); quit {
				t.log.Info().Msg("quit requested")
				return nil
			}
			t.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It reports whether the user asked
// to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventPaste:
		// Paste content arrives as key events between the start and end
		// markers.
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	if b, ok := t.keymap.Lookup(KeyName(ev)); ok {
		switch b.Action {
		case ActionQuit:
			return true
		case ActionBackspace:
			if t.do(engine.Command{Op: engine.OpBackward}) {
				t.do(engine.Command{Op: engine.OpRemove})
			}
		default:
			t.do(b.Command)
		}
		return false
	}

	if ev.Key() == tcell.KeyRune {
		t.do(engine.Command{Op: engine.OpInsert, Arg: string(ev.Rune())})
	}
	return false
}

func (t *Terminal) do(cmd engine.Command) bool {
	res, err := t.eng.Do(cmd)
	if err != nil {
		t.log.Error().Err(err).Str("cmd", cmd.String()).Msg("command failed")
		return false
	}
	if !res.OK {
		_ = t.screen.Beep()
	}
	return res.OK
}
