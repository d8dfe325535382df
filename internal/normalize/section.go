// Package normalize canonicalizes free-text department and section labels.
package normalize

import (
	"regexp"
	"strings"
)

// paddedHyphen matches a hyphen with any surrounding whitespace
var paddedHyphen = regexp.MustCompile(`\s*-\s*`)

// Alias maps a set of spelling variants onto one canonical label
type Alias struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// Rules is the lookup table used by a Normalizer.
// Aliases are checked first, in order, then KeepPrefixes, then Departments.
type Rules struct {
	Aliases      []Alias  `yaml:"aliases"`
	KeepPrefixes []string `yaml:"keep_prefixes"`
	Departments  []string `yaml:"departments"`
	Renames      []Alias  `yaml:"renames"`
}

// DefaultRules returns the built-in section vocabulary.
func DefaultRules() Rules {
	return Rules{
		Aliases: []Alias{
			{Canonical: "AIML", Variants: []string{"AI&ML", "AI & ML", "AIML"}},
			{Canonical: "AI & DS", Variants: []string{"AI & DS", "AIDS", "AI&DS"}},
		},
		KeepPrefixes: []string{"CSE", "IT", "ECE", "EEE"},
		Departments:  []string{"CSE", "IT", "ECE", "EEE", "MECH", "CIVIL"},
		Renames: []Alias{
			{Canonical: "CIVIL", Variants: []string{"CE"}},
			{Canonical: "MECH", Variants: []string{"MECHANICAL"}},
		},
	}
}

type ruleKind int

const (
	ruleAlias ruleKind = iota
	ruleKeepPrefix
	ruleKeepExact
)

type rule struct {
	kind      ruleKind
	match     map[string]struct{}
	prefix    string
	canonical string
}

// Normalizer maps section labels onto a stable vocabulary.
// A Normalizer is immutable after construction and safe for concurrent use.
type Normalizer struct {
	rules []rule
}

// New builds a Normalizer from rules. Table entries are cleaned the same way
// labels are, every canonical form is registered as a variant of itself and
// then resolved through the rules before it, so Normalize is idempotent for
// any table.
func New(r Rules) *Normalizer {
	n := &Normalizer{}

	addAliases := func(aliases []Alias) {
		for _, a := range aliases {
			canonical := clean(a.Canonical)
			if canonical == "" {
				continue
			}
			match := map[string]struct{}{canonical: {}}
			for _, v := range a.Variants {
				if v = clean(v); v != "" {
					match[v] = struct{}{}
				}
			}
			n.rules = append(n.rules, rule{kind: ruleAlias, match: match, canonical: canonical})
		}
	}

	addAliases(r.Aliases)

	for _, p := range r.KeepPrefixes {
		if p = clean(p); p != "" {
			n.rules = append(n.rules, rule{kind: ruleKeepPrefix, prefix: p})
		}
	}

	if len(r.Departments) > 0 {
		match := make(map[string]struct{}, len(r.Departments))
		for _, d := range r.Departments {
			if d = clean(d); d != "" {
				match[d] = struct{}{}
			}
		}
		n.rules = append(n.rules, rule{kind: ruleKeepExact, match: match})
	}

	addAliases(r.Renames)

	// a canonical form matched by an earlier rule maps onto that rule's output
	for i := range n.rules {
		if n.rules[i].kind == ruleAlias {
			n.rules[i].canonical = apply(n.rules[i].canonical, n.rules[:i])
		}
	}

	return n
}

// Default returns a Normalizer over DefaultRules.
func Default() *Normalizer {
	return New(DefaultRules())
}

// Normalize returns the canonical form of label. It never fails; an empty
// label is returned as is.
func (n *Normalizer) Normalize(label string) string {
	if label == "" {
		return label
	}

	return apply(clean(label), n.rules)
}

// apply runs a cleaned section through rules, first match wins
func apply(section string, rules []rule) string {
	for _, r := range rules {
		switch r.kind {
		case ruleAlias:
			if _, ok := r.match[section]; ok {
				return r.canonical
			}
		case ruleKeepPrefix:
			// differentiated sub-sections such as CSE-1 stay as they are
			if section != r.prefix && strings.HasPrefix(section, r.prefix) {
				return section
			}
		case ruleKeepExact:
			if _, ok := r.match[section]; ok {
				return section
			}
		}
	}

	return section
}

func clean(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return paddedHyphen.ReplaceAllString(s, "-")
}
