// Package captions renders the announcement transcript in a terminal
// window. It is a visual Speaker for sighted debugging and demos: the same
// text the synthesizer would utter, on screen as it happens.
package captions

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/railspeak/railspeak/speech"
)

// line is one rendered caption.
type line struct {
	text      string
	interrupt bool
	screen    bool
	at        time.Time
}

// Window displays announcements in a tcell screen.
type Window struct {
	mu     sync.Mutex
	screen tcell.Screen
	lines  []line
	max    int
	closed bool
}

// New initializes a caption window on the current terminal.
func New() (*Window, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	w := &Window{screen: s, max: 64}
	go w.eventLoop()
	return w, nil
}

// Speak implements speech.Speaker.
func (w *Window) Speak(text string, interrupt bool) {
	w.append(line{text: text, interrupt: interrupt, at: time.Now()})
}

// Queue implements speech.Speaker.
func (w *Window) Queue(text string) {
	w.append(line{text: text, at: time.Now()})
}

// AnnounceScreen implements speech.Speaker.
func (w *Window) AnnounceScreen(title string) {
	w.append(line{text: title, screen: true, interrupt: true, at: time.Now()})
}

// Close tears the window down.
func (w *Window) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	w.screen.Fini()
}

func (w *Window) append(l line) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.lines = append(w.lines, l)
	if len(w.lines) > w.max {
		w.lines = w.lines[len(w.lines)-w.max:]
	}
	w.draw()
}

// draw repaints the transcript bottom-up. Caller holds the lock.
func (w *Window) draw() {
	w.screen.Clear()
	width, height := w.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	base := tcell.StyleDefault
	y := height - 1
	for i := len(w.lines) - 1; i >= 0 && y >= 0; i-- {
		l := w.lines[i]
		style := base
		switch {
		case l.screen:
			style = base.Foreground(tcell.ColorAqua).Bold(true)
		case l.interrupt:
			style = base.Foreground(tcell.ColorYellow)
		}
		prefix := l.at.Format("15:04:05") + " "
		drawLine(w.screen, 0, y, width, prefix+l.text, style)
		y--
	}
	w.screen.Show()
}

func drawLine(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

// eventLoop keeps the window responsive to resizes until closed.
func (w *Window) eventLoop() {
	for {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if closed {
			return
		}
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			w.mu.Lock()
			if !w.closed {
				w.screen.Sync()
				w.draw()
			}
			w.mu.Unlock()
		}
	}
}

var _ speech.Speaker = (*Window)(nil)
