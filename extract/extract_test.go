package extract

import (
	"github.com/railspeak/railspeak/announce"
	"github.com/railspeak/railspeak/keywords"
	"github.com/railspeak/railspeak/locale"
	"github.com/railspeak/railspeak/locate"
)

// Capability handles shared by the extractor tests. Field names mirror the
// spellings the introspection probe is expected to find.

type textLabel struct {
	Text string
}

type dialogUI struct {
	Content string
	IsOpen  bool
}

type cardUI struct {
	CardState map[string]any
}

type settingsEntry struct{}

type dropdownControl struct {
	CurrentText string
}

type sliderControl struct {
	NormalizedValue float64
}

type toggleControl struct {
	IsOn bool
}

type scrollRect struct{}

type scrollbarControl struct{}

func newTestContext() *Context {
	return &Context{
		Resolver:   locale.Identity,
		Annotator:  keywords.NewAnnotator(nil),
		State:      announce.NewState(),
		Visibility: locate.NewVisibility(),
	}
}
