package speech

import "testing"

func TestRecorder_Lanes(t *testing.T) {
	r := NewRecorder()
	r.Speak("focused", true)
	r.Queue("passive")
	r.AnnounceScreen("Settings")

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Lane != LaneSpeak || !entries[0].Interrupt {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Lane != LaneQueue || entries[1].Interrupt {
		t.Fatalf("unexpected second entry %+v", entries[1])
	}
	if entries[2].Lane != LaneScreen || entries[2].Text != "Settings" {
		t.Fatalf("unexpected third entry %+v", entries[2])
	}
}

func TestRecorder_IDsAreOrdered(t *testing.T) {
	r := NewRecorder()
	r.Speak("a", false)
	r.Speak("b", false)
	entries := r.Entries()
	if entries[0].ID.Compare(entries[1].ID) >= 0 {
		t.Fatalf("expected monotonic ids, got %s then %s", entries[0].ID, entries[1].ID)
	}
}

func TestRecorder_LastAndReset(t *testing.T) {
	r := NewRecorder()
	if _, ok := r.Last(); ok {
		t.Fatalf("expected empty recorder to have no last entry")
	}
	r.Speak("a", false)
	r.Queue("b")
	last, ok := r.Last()
	if !ok || last.Text != "b" {
		t.Fatalf("unexpected last entry %+v (ok=%v)", last, ok)
	}
	r.Reset()
	if len(r.Entries()) != 0 {
		t.Fatalf("expected reset to clear entries")
	}
	if got := r.Texts(); len(got) != 0 {
		t.Fatalf("expected no texts after reset, got %v", got)
	}
}

func TestLaneString(t *testing.T) {
	if LaneSpeak.String() != "speak" || LaneQueue.String() != "queue" || LaneScreen.String() != "screen" {
		t.Fatalf("unexpected lane names")
	}
}
