// Package rules implements the shared keyword classifier behind every bot:
// an ordered table of pattern sets evaluated against case-folded input.
// Classification is a pure function of (text, table); tables are built once
// at startup and never mutated, so concurrent use needs no locking.
package rules

import (
	"regexp"
	"strings"
)

// Category is a classification label drawn from a bot's closed taxonomy.
type Category string

// Pattern is one containment test: either a literal substring or a
// compiled regular expression.
type Pattern struct {
	substr string
	re     *regexp.Regexp
}

// Substring matches when the folded input contains s.
func Substring(s string) Pattern {
	return Pattern{substr: strings.ToLower(s)}
}

// Regex matches when expr matches anywhere in the folded input. The
// expression is compiled at table-definition time.
func Regex(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr)}
}

func (p Pattern) matches(folded string) bool {
	if p.re != nil {
		return p.re.MatchString(folded)
	}
	return strings.Contains(folded, p.substr)
}

// Rule maps a pattern set to a category. Patterns within one rule combine
// with logical OR.
type Rule struct {
	Patterns []Pattern
	Category Category
}

func (r Rule) matches(folded string) bool {
	for _, p := range r.Patterns {
		if p.matches(folded) {
			return true
		}
	}
	return false
}

// Mode selects how many rules of a table may fire per input.
type Mode int

const (
	// FirstMatch stops at the first rule whose pattern set matches;
	// rule order is the priority order.
	FirstMatch Mode = iota
	// MultiMatch evaluates every rule and reports all matches in table
	// order. The first reported category doubles as the tie-break winner
	// wherever a single category is needed downstream.
	MultiMatch
)

// Table is one bot's ordered rule set. Default is returned whenever no
// rule matches, so classification never comes back empty.
type Table struct {
	Rules   []Rule
	Default Category
	Mode    Mode
}

// Classify evaluates text against the table. The result is never empty:
// a table with no matching rule yields the default category as a
// singleton. Input is trimmed and case-folded before matching.
func (t Table) Classify(text string) []Category {
	folded := strings.ToLower(strings.TrimSpace(text))

	var matched []Category
	for _, r := range t.Rules {
		if !r.matches(folded) {
			continue
		}
		matched = append(matched, r.Category)
		if t.Mode == FirstMatch {
			return matched
		}
	}

	if len(matched) == 0 {
		return []Category{t.Default}
	}
	return matched
}
