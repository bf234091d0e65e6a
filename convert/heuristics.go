package convert

import (
	"strconv"
	"strings"
)

// ParseCCT extracts a correlated color temperature in Kelvin from free
// text ("3000K", "tw/6500", "warm white"). The boolean is false when the
// text carries no recognizable temperature; the function never fails.
func ParseCCT(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if isBlank(s) {
		return 0, false
	}

	// First plausible numeric token wins.
	for _, tok := range numberTokens(s) {
		if v, err := strconv.ParseFloat(tok, 64); err == nil && v >= 1000 && v <= 20000 {
			return v, true
		}
	}

	// Keyword fallback, in priority order.
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "warm") || strings.HasPrefix(l, "ww"):
		return 2700, true
	case strings.Contains(l, "neutral") || strings.HasPrefix(l, "nw"):
		return 4000, true
	case strings.Contains(l, "cool") || strings.Contains(l, "cold") || strings.HasPrefix(l, "cw"):
		return 5000, true
	case strings.Contains(l, "daylight") || strings.HasPrefix(l, "tw"):
		return 6500, true
	}

	return 0, false
}

// criGroups maps color-rendering group codes to representative Ra values.
// Order matters for the prefix fallback: longer codes first, the bare "2"
// last so it cannot shadow "2A"/"2B".
var criGroups = []struct {
	code string
	ra   float64
}{
	{"1A", 90},
	{"1B", 80},
	{"2A", 70},
	{"2B", 60},
	{"3", 50},
	{"4", 40},
	{"2", 70},
}

// ParseCRI extracts a color rendering index from free text ("1B/86",
// "Ra>90", "1A"). Numeric values in [20,100] are preferred over group
// codes, and the largest such value wins. The boolean is false when
// nothing is recognizable; the function never fails.
func ParseCRI(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if isBlank(s) {
		return 0, false
	}

	// Precise measurement beats group code: largest numeric in [20,100].
	best, found := 0.0, false
	for _, tok := range numberTokens(s) {
		if v, err := strconv.ParseFloat(tok, 64); err == nil && v >= 20 && v <= 100 {
			if !found || v > best {
				best, found = v, true
			}
		}
	}
	if found {
		return best, true
	}

	// Exact group-code tokens.
	up := strings.ToUpper(s)
	for _, tok := range strings.FieldsFunc(up, isGroupSeparator) {
		for _, g := range criGroups {
			if tok == g.code {
				return g.ra, true
			}
		}
	}

	// Last resort: the whole string starts with a group code.
	for _, g := range criGroups {
		if strings.HasPrefix(up, g.code) {
			return g.ra, true
		}
	}

	return 0, false
}

// CRIToGroup buckets an Ra value into the classic group-code text, the
// inverse of the ParseCRI group table. The table's domain is [0,100];
// out-of-range values clamp to the nearest bucket.
func CRIToGroup(ra float64) string {
	if ra > 100 {
		ra = 100
	}
	switch {
	case ra >= 90:
		return "1A"
	case ra >= 80:
		return "1B"
	case ra >= 70:
		return "2A"
	case ra >= 60:
		return "2B"
	case ra >= 40:
		return "3"
	default:
		return "4"
	}
}

// isBlank reports the placeholder spellings that mean "no value".
func isBlank(s string) bool {
	switch strings.ToLower(s) {
	case "", "n/a", "none", "-":
		return true
	default:
		return false
	}
}

// isGroupSeparator is the token-split set for group-code scanning.
func isGroupSeparator(r rune) bool {
	switch r {
	case '/', '-', ' ', ':', '(', ')':
		return true
	default:
		return false
	}
}

// numberTokens returns the maximal digit runs of s, each allowing one
// internal decimal point. A trailing point with no digit after it is
// dropped rather than invalidating the run.
func numberTokens(s string) []string {
	var toks []string
	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !isDigit(runes[i]) {
			i++
			continue
		}
		start := i
		sawPoint := false
	run:
		for i < len(runes) {
			switch {
			case isDigit(runes[i]):
				i++
			case runes[i] == '.' && !sawPoint && i+1 < len(runes) && isDigit(runes[i+1]):
				sawPoint = true
				i++
			default:
				break run
			}
		}
		toks = append(toks, string(runes[start:i]))
	}

	return toks
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
