package speech

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Lane identifies which Speaker operation produced an announcement.
type Lane int

// Announcement lanes.
const (
	LaneSpeak Lane = iota
	LaneQueue
	LaneScreen
)

// String returns the lane name.
func (l Lane) String() string {
	switch l {
	case LaneSpeak:
		return "speak"
	case LaneQueue:
		return "queue"
	case LaneScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Announcement is one recorded utterance.
type Announcement struct {
	ID        ulid.ULID
	Lane      Lane
	Text      string
	Interrupt bool
	At        time.Time
}

// Recorder captures announcements for tests and transcript dumps.
type Recorder struct {
	mu      sync.Mutex
	entries []Announcement
	entropy *ulid.MonotonicEntropy
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Recorder{entropy: ulid.Monotonic(seed, 0)}
}

// Speak implements Speaker.
func (r *Recorder) Speak(text string, interrupt bool) {
	r.record(LaneSpeak, text, interrupt)
}

// Queue implements Speaker.
func (r *Recorder) Queue(text string) {
	r.record(LaneQueue, text, false)
}

// AnnounceScreen implements Speaker.
func (r *Recorder) AnnounceScreen(title string) {
	r.record(LaneScreen, title, true)
}

func (r *Recorder) record(lane Lane, text string, interrupt bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.entries = append(r.entries, Announcement{
		ID:        ulid.MustNew(ulid.Timestamp(now), r.entropy),
		Lane:      lane,
		Text:      text,
		Interrupt: interrupt,
		At:        now,
	})
}

// Entries returns a copy of all recorded announcements.
func (r *Recorder) Entries() []Announcement {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Announcement, len(r.entries))
	copy(out, r.entries)
	return out
}

// Texts returns the recorded texts in order.
func (r *Recorder) Texts() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

// Last returns the most recent announcement.
func (r *Recorder) Last() (Announcement, bool) {
	entries := r.Entries()
	if len(entries) == 0 {
		return Announcement{}, false
	}
	return entries[len(entries)-1], true
}

// Reset discards recorded announcements.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
