// Package locale resolves localization keys against the host's own
// translation mechanism. The host's translate entry point is unknown at
// build time and is discovered by probing loaded module objects.
package locale

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"unicode"
)

// Resolver turns a localization key into display text.
type Resolver interface {
	Resolve(key string) string
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(key string) string

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(key string) string { return f(key) }

// Identity returns keys unchanged.
var Identity Resolver = ResolverFunc(func(key string) string { return key })

// LooksLikeKey reports whether a string is plausibly a localization key
// rather than display text. Keys carry underscores or are written entirely
// in uppercase.
func LooksLikeKey(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsRune(s, '_') {
		return true
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// Localize applies the key heuristic and resolves through r. Literals pass
// through untouched, and a resolution that returns its input (no translation
// available) keeps the original.
func Localize(r Resolver, s string) string {
	if s == "" || r == nil || !LooksLikeKey(s) {
		return s
	}
	out := r.Resolve(s)
	if out == "" {
		return s
	}
	return out
}

// ModuleSource exposes the host's loaded code modules as opaque objects for
// translate-function discovery.
type ModuleSource interface {
	Modules() []any
}

// translateNames are the conventional entry point names probed during
// discovery, in preference order.
var translateNames = []string{"Translate", "Localize", "LocalizeKey", "GetText", "Lookup", "Text"}

// Discovered resolves keys through a translate function found by scanning
// the host's modules. The first match is memoized for the process lifetime;
// if none is ever found, keys are returned verbatim after a single warning.
type Discovered struct {
	source    ModuleSource
	log       *slog.Logger
	scanned   bool
	translate func(string) string
}

// NewDiscovered creates a resolver over the given module source.
func NewDiscovered(source ModuleSource, log *slog.Logger) *Discovered {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Discovered{source: source, log: log}
}

// Resolve implements Resolver.
func (d *Discovered) Resolve(key string) string {
	if d == nil {
		return key
	}
	if !d.scanned {
		d.scanned = true
		d.translate = d.discover()
		if d.translate == nil {
			d.log.Warn("no translate entry point found; keys will be spoken verbatim")
		}
	}
	if d.translate == nil {
		return key
	}
	out := safeTranslate(d.translate, key)
	if out == "" || out == key {
		return key
	}
	return out
}

func (d *Discovered) discover() func(string) string {
	if d.source == nil {
		return nil
	}
	for _, mod := range d.source.Modules() {
		if fn := translateFuncOf(mod); fn != nil {
			d.log.Info("translate entry point discovered",
				slog.String("module", reflect.TypeOf(mod).String()))
			return fn
		}
	}
	return nil
}

// translateFuncOf probes a module object for a string-to-string translate
// function: the module may be such a function itself, or expose one as an
// exported method named by convention.
func translateFuncOf(mod any) func(string) string {
	if mod == nil {
		return nil
	}
	if fn, ok := mod.(func(string) string); ok {
		return fn
	}
	v := reflect.ValueOf(mod)
	for _, name := range translateNames {
		m := v.MethodByName(name)
		if !m.IsValid() {
			continue
		}
		mt := m.Type()
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		if mt.In(0).Kind() != reflect.String || mt.Out(0).Kind() != reflect.String {
			continue
		}
		fn := m
		return func(key string) string {
			out := fn.Call([]reflect.Value{reflect.ValueOf(key)})
			return out[0].String()
		}
	}
	return nil
}

func safeTranslate(fn func(string) string, key string) (out string) {
	defer func() {
		if recover() != nil {
			out = key
		}
	}()
	return fn(key)
}
