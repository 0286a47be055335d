// Package markup rewrites the host's inline presentation markup into plain
// speakable text. Passes run in a fixed order and the whole pipeline is
// idempotent: cleaning already-clean text changes nothing.
package markup

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultAnnounceCap is the display width at which a first announcement of
// long content is cut off.
const DefaultAnnounceCap = 500

// FullTextHint is appended to capped announcements.
const FullTextHint = " Press read-all for the full text."

var (
	spriteRe      = regexp.MustCompile(`(?i)<sprite\s+name\s*=\s*"?([^">]+?)"?\s*/?>`)
	valueSpanRe   = regexp.MustCompile(`(?i)<(gold|ember|power|health|damage|capacity|shard)>([^<]*)</(?:gold|ember|power|health|damage|capacity|shard)>`)
	highlightRe   = regexp.MustCompile(`(?i)</?(?:b|i|u|em|strong|highlight|upgrade)\s*>`)
	styledSpanRe  = regexp.MustCompile(`(?i)</?(?:color|size|style|font|nobr|align)(?:=[^>]*)?\s*>`)
	placeholderRe = regexp.MustCompile(`\{\[([^\[\]{}]+)\]\}`)
	anyTagRe      = regexp.MustCompile(`<[^<>]*>`)
	spaceRe       = regexp.MustCompile(`\s+`)
)

// Clean rewrites markup into speakable text with no placeholder parameters.
func Clean(s string) string {
	return CleanParams(s, nil)
}

// CleanParams rewrites markup into speakable text, substituting template
// placeholders of the form {[name]} from params. Placeholders with no
// matching parameter are dropped.
func CleanParams(s string, params map[string]string) string {
	if s == "" {
		return ""
	}
	out := spriteRe.ReplaceAllStringFunc(s, func(m string) string {
		name := spriteRe.FindStringSubmatch(m)[1]
		return " " + strings.ToLower(strings.TrimSpace(name)) + " "
	})
	out = valueSpanRe.ReplaceAllStringFunc(out, func(m string) string {
		parts := valueSpanRe.FindStringSubmatch(m)
		unit := strings.ToLower(parts[1])
		value := strings.TrimSpace(parts[2])
		if value == "" {
			return " " + unit + " "
		}
		return " " + value + " " + unit + " "
	})
	out = highlightRe.ReplaceAllString(out, "")
	out = styledSpanRe.ReplaceAllString(out, "")
	out = placeholderRe.ReplaceAllStringFunc(out, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := params[strings.TrimSpace(name)]; ok {
			return v
		}
		return " "
	})
	out = anyTagRe.ReplaceAllString(out, " ")
	out = spaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Truncate caps text at maxWidth display columns, appending an ellipsis and
// the read-all hint when content was dropped. A maxWidth of zero or less
// applies DefaultAnnounceCap.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = DefaultAnnounceCap
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...") + FullTextHint
}

// CleanName turns a node name into a speakable label: clone suffixes and
// trailing indices are stripped, and camel-case or underscore-separated
// words are spaced.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, "(Clone)")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && isWordBoundary(runes[i-1], r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	out := spaceRe.ReplaceAllString(b.String(), " ")
	out = strings.TrimSpace(out)
	out = strings.TrimRight(out, "0123456789 ")
	if out == "" {
		out = strings.TrimSpace(name)
	}
	return out
}

func isWordBoundary(prev, cur rune) bool {
	if prev >= 'a' && prev <= 'z' && cur >= 'A' && cur <= 'Z' {
		return true
	}
	if (prev < '0' || prev > '9') && prev != ' ' && cur >= '0' && cur <= '9' {
		return true
	}
	return false
}
