package command

import (
	"strings"

	"github.com/alimostafaali30/audiolearn/internal/locale"
)

// Wildcard is the placeholder token capturing one argument in a pattern,
// e.g. "start test *".
const Wildcard = "*"

// Command binds one phrase pattern to a handler. Parameterized commands
// contain exactly one wildcard token and receive the captured substring.
type Command struct {
	Pattern       string
	Parameterized bool
	handle        func(arg string)
}

// Result reports the outcome of a dispatch.
type Result struct {
	// Matched is false when no registered pattern covered the utterance.
	Matched bool
	// Pattern is the pattern that won, normalized.
	Pattern string
	// Arg is the wildcard capture, empty for literal commands.
	Arg string
	// Utterance is the normalized input, reported back for the
	// "command not recognized" status.
	Utterance string
}

// Registry maps recognized utterances to handlers. Each locale has its own
// ordered pattern table; switching the active locale swaps tables without
// losing the inactive one.
type Registry struct {
	tables map[locale.Locale][]*Command
	active locale.Locale
}

// NewRegistry creates a registry with the given active locale.
func NewRegistry(active locale.Locale) *Registry {
	return &Registry{
		tables: make(map[locale.Locale][]*Command),
		active: active,
	}
}

// SetLocale switches the active pattern table.
func (r *Registry) SetLocale(l locale.Locale) {
	r.active = l
}

// Locale returns the active locale.
func (r *Registry) Locale() locale.Locale {
	return r.active
}

// Reset drops every pattern table. Screens re-register their commands on
// entry.
func (r *Registry) Reset() {
	r.tables = make(map[locale.Locale][]*Command)
}

// Register binds a literal pattern to a zero-argument handler. Registering
// the same pattern again replaces the earlier handler in place, keeping the
// original order.
func (r *Registry) Register(l locale.Locale, pattern string, handle func()) {
	r.add(l, pattern, false, func(string) { handle() })
}

// RegisterParam binds a pattern containing exactly one wildcard token to a
// one-argument handler.
func (r *Registry) RegisterParam(l locale.Locale, pattern string, handle func(arg string)) {
	r.add(l, pattern, true, handle)
}

func (r *Registry) add(l locale.Locale, pattern string, parameterized bool, handle func(string)) {
	pattern = Normalize(pattern)
	for _, c := range r.tables[l] {
		if c.Pattern == pattern {
			c.Parameterized = parameterized
			c.handle = handle
			return
		}
	}
	r.tables[l] = append(r.tables[l], &Command{
		Pattern:       pattern,
		Parameterized: parameterized,
		handle:        handle,
	})
}

// Dispatch normalizes the utterance and invokes the first matching handler
// of the active locale: literal patterns first, then wildcard patterns in
// registration order. It never returns an error; an unmatched utterance is
// reported in the result.
func (r *Registry) Dispatch(utterance string) Result {
	utt := Normalize(utterance)
	table := r.tables[r.active]

	for _, c := range table {
		if !c.Parameterized && c.Pattern == utt {
			c.handle("")
			return Result{Matched: true, Pattern: c.Pattern, Utterance: utt}
		}
	}

	for _, c := range table {
		if !c.Parameterized {
			continue
		}
		arg, ok := matchWildcard(c.Pattern, utt)
		if !ok {
			continue
		}
		c.handle(arg)
		return Result{Matched: true, Pattern: c.Pattern, Arg: arg, Utterance: utt}
	}

	return Result{Utterance: utt}
}

// matchWildcard tests utt against a single-wildcard pattern. The wildcard
// is anchored by the literal text around it and must capture at least one
// character.
func matchWildcard(pattern, utt string) (string, bool) {
	i := strings.Index(pattern, Wildcard)
	if i < 0 || strings.Count(pattern, Wildcard) != 1 {
		return "", false
	}

	prefix, suffix := pattern[:i], pattern[i+1:]
	if !strings.HasPrefix(utt, prefix) || !strings.HasSuffix(utt, suffix) {
		return "", false
	}
	arg := utt[len(prefix) : len(utt)-len(suffix)]
	if arg == "" {
		return "", false
	}
	return strings.TrimSpace(arg), true
}

// Normalize lowercases, trims, strips sentence punctuation (Latin and
// Arabic) and collapses runs of whitespace, so recognizer noise does not
// defeat matching.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '!', '?', '؟', '،':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
