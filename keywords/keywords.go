// Package keywords scans resolved text for known domain vocabulary and
// appends short inline definitions. The glossary ships as an embedded
// Markdown document: one level-two heading per keyword, a one-line
// definition paragraph beneath it.
package keywords

import (
	_ "embed"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed glossary.md
var glossarySource []byte

// Term is one glossary entry.
type Term struct {
	Name       string
	Definition string
	re         *regexp.Regexp
}

// Annotator appends keyword definitions to utterances.
type Annotator struct {
	terms []Term
	byID  map[string]int
}

// NewAnnotator parses the embedded glossary. A malformed glossary degrades
// to an empty annotator with a logged warning rather than failing.
func NewAnnotator(log *slog.Logger) *Annotator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	terms, err := parseGlossary(glossarySource)
	if err != nil {
		log.Warn("keyword glossary unusable", slog.String("error", err.Error()))
		terms = nil
	}
	a := &Annotator{terms: terms, byID: make(map[string]int, len(terms))}
	for i, t := range a.terms {
		a.byID[normalizeID(t.Name)] = i
	}
	return a
}

// Len returns the number of glossary terms.
func (a *Annotator) Len() int {
	if a == nil {
		return 0
	}
	return len(a.terms)
}

// Annotate appends the definition of each keyword found in text, once per
// keyword, ordered by first occurrence. Matching is case-insensitive on
// whole words.
func (a *Annotator) Annotate(s string) string {
	if a == nil || s == "" {
		return s
	}
	type hit struct {
		pos  int
		term Term
	}
	var hits []hit
	for _, t := range a.terms {
		loc := t.re.FindStringIndex(s)
		if loc == nil {
			continue
		}
		hits = append(hits, hit{pos: loc[0], term: t})
	}
	if len(hits) == 0 {
		return s
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	var b strings.Builder
	b.WriteString(s)
	for _, h := range hits {
		if !endsSentence(b.String()) {
			b.WriteString(".")
		}
		b.WriteString(" ")
		b.WriteString(h.term.Name)
		b.WriteString(": ")
		b.WriteString(h.term.Definition)
	}
	return b.String()
}

// endsSentence reports whether text already closes with terminal
// punctuation.
func endsSentence(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return strings.ContainsAny(s[len(s)-1:], ".!?")
}

// FindTerms returns the glossary terms present in text, ordered by first
// occurrence, each at most once.
func (a *Annotator) FindTerms(s string) []Term {
	if a == nil || s == "" {
		return nil
	}
	type hit struct {
		pos  int
		term Term
	}
	var hits []hit
	for _, t := range a.terms {
		if loc := t.re.FindStringIndex(s); loc != nil {
			hits = append(hits, hit{pos: loc[0], term: t})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]Term, len(hits))
	for i, h := range hits {
		out[i] = h.term
	}
	return out
}

// Definition looks a term up by its display name.
func (a *Annotator) Definition(name string) (string, bool) {
	return a.DefinitionByID(name)
}

// DefinitionByID looks a term up by a status-effect style identifier:
// matching ignores case, spaces, and underscores, so "damage_shield" and
// "Damage Shield" find the same entry.
func (a *Annotator) DefinitionByID(id string) (string, bool) {
	if a == nil {
		return "", false
	}
	i, ok := a.byID[normalizeID(id)]
	if !ok {
		return "", false
	}
	return a.terms[i].Definition, true
}

// Term returns the glossary entry for an identifier.
func (a *Annotator) Term(id string) (Term, bool) {
	if a == nil {
		return Term{}, false
	}
	i, ok := a.byID[normalizeID(id)]
	if !ok {
		return Term{}, false
	}
	return a.terms[i], true
}

func normalizeID(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func parseGlossary(src []byte) ([]Term, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var terms []Term
	var pending string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				pending = nodeText(node, src)
			} else {
				pending = ""
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if pending == "" {
				return ast.WalkSkipChildren, nil
			}
			def := nodeText(node, src)
			if def != "" {
				terms = append(terms, Term{
					Name:       pending,
					Definition: def,
					re:         wordPattern(pending),
				})
			}
			pending = ""
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// nodeText flattens a node's text segments, collapsing soft line breaks.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		default:
			b.WriteString(nodeText(c, src))
		}
	}
	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}

func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
}
