// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/editor.go
// Summary: Session loop driving the viewport renderer and caret controller.
// Usage: cmd/ecto calls Run; tests drive New(...).Run over fake or simulated surfaces.
// Notes: Single goroutine. The only blocking point is PollEvent.

package editor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/ecto/buffer"
	"github.com/framegrace/ecto/caret"
	"github.com/framegrace/ecto/terminal"
	"github.com/framegrace/ecto/view"
)

const farewell = "Goodbye\r\n"

var (
	// ErrEventSourceClosed is returned when the surface stops delivering
	// events before the user quit.
	ErrEventSourceClosed = errors.New("event source closed")
	// ErrNotTerminal is returned when stdin cannot host a raw session.
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// Options configures a session.
type Options struct {
	// Path is the optional document to display.
	Path string
	View view.Options
	// PanicLog receives stack traces of panics raised inside the session.
	PanicLog string
	// Output receives the farewell line. Defaults to os.Stdout.
	Output io.Writer
}

var (
	screenFactory = tcell.NewScreen
	isTerminal    = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run opens the controlling terminal and runs a session on it.
func Run(opts Options) error {
	if !isTerminal() {
		return ErrNotTerminal
	}
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return New(terminal.NewTcellSurface(screen), opts).Run()
}

// Editor is the session state: quit flag, caret and view.
type Editor struct {
	surface    terminal.Surface
	opts       Options
	guard      *PanicGuard
	caret      *caret.Controller
	view       *view.View
	shouldQuit bool
}

// New prepares a session over surface. Nothing is drawn until Run.
func New(surface terminal.Surface, opts Options) *Editor {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Editor{
		surface: surface,
		opts:    opts,
		guard:   NewPanicGuard(opts.PanicLog),
		caret:   caret.NewController(),
	}
}

// Run enters the raw session, loops until quit or failure, and always
// restores the terminal before returning or propagating a panic.
func (e *Editor) Run() error {
	if err := e.surface.Enter(); err != nil {
		return fmt.Errorf("enter raw session: %w", err)
	}
	defer e.guard.Recover("session", e.surface.Exit)

	e.start()
	err := e.loop()

	e.surface.Exit()
	if e.shouldQuit {
		fmt.Fprint(e.opts.Output, farewell)
	}
	if err != nil {
		log.Printf("Editor: session ended with error: %v", err)
	}
	return err
}

// Caret returns the current caret position.
func (e *Editor) Caret() terminal.Coordinate {
	return e.caret.Position()
}

// View returns the session's renderer, or nil before Run.
func (e *Editor) View() *view.View {
	return e.view
}

func (e *Editor) start() {
	e.view = view.New(e.surface, e.opts.View)
	e.view.Load(buffer.LoadOrDefault(e.opts.Path))
	e.view.Initialize()
	log.Printf("Editor: session started at %dx%d", e.view.Size().X, e.view.Size().Y)
}

func (e *Editor) loop() error {
	for {
		e.refresh()
		if e.shouldQuit {
			return nil
		}
		ev := e.surface.PollEvent()
		if ev == nil {
			return ErrEventSourceClosed
		}
		if err := e.evaluate(ev); err != nil {
			return err
		}
	}
}

func (e *Editor) refresh() {
	e.surface.HideCursor()
	e.view.RenderFull()
	e.surface.MoveCursor(e.caret.Position())
	e.surface.ShowCursor()
	e.surface.Flush()
}

func (e *Editor) evaluate(ev tcell.Event) error {
	act := decodeEvent(ev)
	switch act.kind {
	case actionQuit:
		e.shouldQuit = true
	case actionMove:
		e.caret.Move(act.key, e.surface.Size())
	case actionResize:
		e.view.Resize(act.size)
	case actionFail:
		return fmt.Errorf("read event: %w", act.err)
	}
	return nil
}
