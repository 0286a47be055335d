// Package speech defines the outbound speech collaborator: a fire-and-forget
// sink with an interrupting lane, a queued lane, and a screen-title lane.
// The engine never waits for speech completion.
package speech

// Speaker is the engine's only outbound side effect.
type Speaker interface {
	// Speak utters text; interrupt cuts off anything in progress.
	Speak(text string, interrupt bool)

	// Queue utters text after anything already speaking or queued.
	Queue(text string)

	// AnnounceScreen announces entry to a named screen.
	AnnounceScreen(title string)
}

// Null discards all announcements.
type Null struct{}

// Speak implements Speaker.
func (Null) Speak(string, bool) {}

// Queue implements Speaker.
func (Null) Queue(string) {}

// AnnounceScreen implements Speaker.
func (Null) AnnounceScreen(string) {}

// Func adapts plain functions to the Speaker interface. Nil fields are
// no-ops.
type Func struct {
	OnSpeak  func(text string, interrupt bool)
	OnQueue  func(text string)
	OnScreen func(title string)
}

// Speak implements Speaker.
func (f Func) Speak(text string, interrupt bool) {
	if f.OnSpeak != nil {
		f.OnSpeak(text, interrupt)
	}
}

// Queue implements Speaker.
func (f Func) Queue(text string) {
	if f.OnQueue != nil {
		f.OnQueue(text)
	}
}

// AnnounceScreen implements Speaker.
func (f Func) AnnounceScreen(title string) {
	if f.OnScreen != nil {
		f.OnScreen(title)
	}
}
