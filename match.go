package textengine

import (
	"cmp"
	"slices"
)

// Match is a span of the source claimed by a rule. Start and End are byte
// offsets, End exclusive.
type Match struct {
	Start, End int
	Attributes Attributes
	Rule       int  // rank of the rule: patterns in registration order, then detectors
	Truncated  bool // the rule matched more, and lost the front part to a higher ranking match
}

// Text returns the part of source covered by m.
func (m Match) Text(source string) string {
	return source[m.Start:m.End]
}

// Matches runs all rules against source and returns the resolved, non-overlapping
// matches in order of position. If any resolver fails, Matches returns a
// *ResolverError and no matches.
func (e *Engine) Matches(source string) ([]Match, error) {
	candidates, err := e.candidates(source)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(candidates, func(a, b Match) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.Rule, b.Rule))
	})
	return resolveOverlaps(candidates), nil
}

// candidates collects the matches of all rules, overlapping or not.
func (e *Engine) candidates(source string) ([]Match, error) {
	var matches []Match
	for rank, rule := range e.patterns {
		for _, loc := range rule.Expr.FindAllStringSubmatchIndex(source, -1) {
			if loc[0] == loc[1] {
				continue // empty matches claim no text
			}
			a, err := rule.Resolver.resolve(rule.Expr, source, loc)
			if err != nil {
				return nil, &ResolverError{Rule: rank, Start: loc[0], End: loc[1], Err: err}
			}
			matches = append(matches, Match{Start: loc[0], End: loc[1], Attributes: a, Rule: rank})
		}
	}
	for i, rule := range e.detectors {
		rank := len(e.patterns) + i
		for _, r := range rule.Detector.Find(source) {
			if r.Start >= r.End {
				continue
			}
			a, err := rule.Resolver(r, source)
			if err != nil {
				return nil, &ResolverError{Rule: rank, Start: r.Start, End: r.End, Err: err}
			}
			matches = append(matches, Match{Start: r.Start, End: r.End, Attributes: a, Rule: rank})
		}
	}
	tracer().Debugf("%d rules found %d candidate matches", len(e.patterns)+len(e.detectors), len(matches))
	return matches, nil
}

// resolveOverlaps walks matches ordered by start and rank. Each match claims
// what is not yet claimed: a match inside a claimed span is dropped, a match
// reaching beyond it is truncated to the remainder.
func resolveOverlaps(sorted []Match) []Match {
	resolved := make([]Match, 0, len(sorted))
	claimed := 0
	for _, m := range sorted {
		if m.End <= claimed {
			tracer().Debugf("dropping match [%d,%d) of rule #%d", m.Start, m.End, m.Rule)
			continue
		}
		if m.Start < claimed {
			tracer().Debugf("truncating match [%d,%d) of rule #%d to [%d,%d)", m.Start, m.End, m.Rule, claimed, m.End)
			m.Start = claimed
			m.Truncated = true
			m.Attributes.ReplaceText = nil
		}
		resolved = append(resolved, m)
		claimed = m.End
	}
	return resolved
}
