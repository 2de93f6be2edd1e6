package lifesrc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseRuleString parses one of the four rule-string grammars named in
// SPEC_FULL.md §4.8, inferring which grammar applies from the string's
// shape (the presence of a trailing "/<n>" generations count, and of
// letters after count digits for the non-totalistic forms), grounded on
// original_source's config.rs rule_str handling. It returns ErrInvalidRuleString
// (wrapped with detail) on any malformed input.
func ParseRuleString(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, configErrorf(ErrInvalidRuleString, "empty rule string")
	}

	generations := 0
	body := s
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		tail := s[i+1:]
		if n, err := strconv.Atoi(tail); err == nil {
			generations = n
			body = s[:i]
		}
	}
	if generations != 0 && generations < 3 {
		return nil, configErrorf(ErrInvalidRuleString, "generations count %d must be >= 3", generations)
	}

	bPart, sPart, err := splitBirthSurvival(body)
	if err != nil {
		return nil, err
	}

	if isNonTotalisticSpec(bPart) || isNonTotalisticSpec(sPart) {
		return parseNonTotalistic(s, bPart, sPart, generations)
	}
	return parseTotalistic(s, bPart, sPart, generations)
}

// splitBirthSurvival splits "B.../S..." (in either order) into its two
// halves. A bare "3457/357" shorthand (birth/survival, no letters, as
// used by the Generations grammar's first two fields) is also accepted.
func splitBirthSurvival(body string) (bPart, sPart string, err error) {
	upper := strings.ToUpper(body)
	bi := strings.IndexByte(upper, 'B')
	si := strings.IndexByte(upper, 'S')
	if bi < 0 && si < 0 {
		// "3457/357" shorthand: birth/survival, digits only.
		parts := strings.SplitN(body, "/", 2)
		if len(parts) != 2 {
			return "", "", configErrorf(ErrInvalidRuleString, "rule string %q has neither B/S letters nor a birth/survival digit pair", body)
		}
		return parts[0], parts[1], nil
	}
	if bi < 0 || si < 0 {
		return "", "", configErrorf(ErrInvalidRuleString, "rule string %q has only one of B/S", body)
	}

	// "B.../S..." in either order: split on the separating slash, then
	// strip each half's own leading B/S letter (always its first byte).
	parts := strings.SplitN(body, "/", 2)
	if len(parts) != 2 {
		return "", "", configErrorf(ErrInvalidRuleString, "rule string %q is missing the B/S separator", body)
	}
	first, second := parts[0], parts[1]
	if len(first) == 0 || len(second) == 0 {
		return "", "", configErrorf(ErrInvalidRuleString, "rule string %q has an empty B/S field", body)
	}
	if first[0] == 'B' || first[0] == 'b' {
		return first[1:], second[1:], nil
	}
	return second[1:], first[1:], nil
}

func isNonTotalisticSpec(part string) bool {
	for _, r := range part {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

func parseTotalistic(name, bPart, sPart string, generations int) (Rule, error) {
	var birth, survival [9]bool
	if err := fillDigitSet(bPart, &birth); err != nil {
		return nil, configErrorf(ErrInvalidRuleString, "rule %q: bad birth digits: %v", name, err)
	}
	if err := fillDigitSet(sPart, &survival); err != nil {
		return nil, configErrorf(ErrInvalidRuleString, "rule %q: bad survival digits: %v", name, err)
	}
	return NewTotalisticRule(name, birth, survival, generations), nil
}

func fillDigitSet(part string, set *[9]bool) error {
	for _, r := range part {
		if r < '0' || r > '8' {
			return fmt.Errorf("digit %q out of range 0-8", r)
		}
		set[r-'0'] = true
	}
	return nil
}

// parseNonTotalistic parses a Hensel-notation part such as "3-q4c" or
// "2-ce" into per-count letter sets, expanding each via the orbit table
// (orbit.go) into concrete 8-bit configurations. A count with no
// trailing letters expands to every configuration at that count; a
// count with a leading '-' before its letters means "every
// configuration at this count except these letters".
func parseNonTotalistic(name, bPart, sPart string, generations int) (Rule, error) {
	var birth, survival [256]bool
	if err := fillPatternSet(bPart, &birth); err != nil {
		return nil, configErrorf(ErrInvalidRuleString, "rule %q: bad birth spec: %v", name, err)
	}
	if err := fillPatternSet(sPart, &survival); err != nil {
		return nil, configErrorf(ErrInvalidRuleString, "rule %q: bad survival spec: %v", name, err)
	}
	return NewNonTotalisticRule(name, birth, survival, generations), nil
}

func fillPatternSet(part string, set *[256]bool) error {
	i := 0
	for i < len(part) {
		if part[i] < '0' || part[i] > '8' {
			return fmt.Errorf("expected a neighbor-count digit, found %q", part[i])
		}
		count := int(part[i] - '0')
		i++
		exclude := false
		if i < len(part) && part[i] == '-' {
			exclude = true
			i++
		}
		var letters []byte
		for i < len(part) && part[i] >= 'a' && part[i] <= 'z' {
			letters = append(letters, part[i])
			i++
		}
		switch {
		case len(letters) == 0 && !exclude:
			for _, p := range AllPatternsForCount(count) {
				set[p] = true
			}
		case exclude:
			excluded := map[byte]bool{}
			for _, l := range letters {
				excluded[l] = true
			}
			for _, l := range LettersForCount(count) {
				if excluded[l] {
					continue
				}
				for _, p := range PatternsForLetter(count, l) {
					set[p] = true
				}
			}
		default:
			for _, l := range letters {
				pats := PatternsForLetter(count, l)
				if pats == nil {
					return fmt.Errorf("no orbit %q at count %d", l, count)
				}
				for _, p := range pats {
					set[p] = true
				}
			}
		}
	}
	return nil
}

// RuleStringOf serializes r back to a canonical rule string, used when
// a World's Config is rebuilt for a snapshot (snapshot.go's toConfig).
// Totalistic rules serialize to the classic "B.../S..." form;
// non-totalistic rules serialize via the orbit table's letters.
func RuleStringOf(r Rule) string {
	var s string
	switch rule := r.(type) {
	case *TotalisticRule:
		s = "B" + digitsOf(rule.birth[:]) + "/S" + digitsOf(rule.survival[:])
	case *NonTotalisticRule:
		s = "B" + lettersOf(rule.birth) + "/S" + lettersOf(rule.survival)
	default:
		return r.Name()
	}
	if g := r.Generations(); g > 0 {
		s += "/" + strconv.Itoa(g)
	}
	return s
}

func digitsOf(set []bool) string {
	var b strings.Builder
	for c, ok := range set {
		if ok {
			b.WriteByte(byte('0' + c))
		}
	}
	return b.String()
}

func lettersOf(set [256]bool) string {
	byCount := map[int]map[byte]bool{}
	unambiguous := map[int]bool{}
	for p := 0; p < 256; p++ {
		if !set[p] {
			continue
		}
		letter, total := OrbitLetter(uint8(p))
		count := countOf(p)
		if total <= 1 {
			unambiguous[count] = true
			continue
		}
		if byCount[count] == nil {
			byCount[count] = map[byte]bool{}
		}
		byCount[count][letter] = true
	}
	counts := map[int]bool{}
	for c := range byCount {
		counts[c] = true
	}
	for c := range unambiguous {
		counts[c] = true
	}
	ordered := make([]int, 0, len(counts))
	for c := range counts {
		ordered = append(ordered, c)
	}
	sort.Ints(ordered)

	var b strings.Builder
	for _, c := range ordered {
		b.WriteByte(byte('0' + c))
		if unambiguous[c] {
			continue
		}
		letters := make([]byte, 0, len(byCount[c]))
		for l := range byCount[c] {
			letters = append(letters, l)
		}
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
		b.Write(letters)
	}
	return b.String()
}

func countOf(pattern int) int {
	n := 0
	for pattern != 0 {
		n += pattern & 1
		pattern >>= 1
	}
	return n
}
