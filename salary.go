package jobpost

import (
	"regexp"
	"strconv"
	"strings"
)

// salaryPattern pairs a compiled range expression with the submatch indices
// for its currency symbol, numeric bounds, and multiplier suffixes. Index 0
// means the pattern has no such group.
type salaryPattern struct {
	re           *regexp.Regexp
	sym          int
	min, minMult int
	max, maxMult int
}

const (
	salaryNumber = `(\d+(?:[,.]\d+)?)`
	salaryMult   = `(k|lakhs?|l)?`
	salarySep    = `\s*(?:-|–|to)\s*`
	salarySym    = `[$₹€£¥]`
)

// Ordered by specificity: explicit currency symbols first, then labeled
// salary lines, then bare ranges qualified by a pay period, then single
// "up to" amounts.
var salaryPatterns = []salaryPattern{
	{
		re: regexp.MustCompile(`(?i)(` + salarySym + `)\s*` + salaryNumber + `\s*` + salaryMult + salarySep + salarySym + `?\s*` + salaryNumber + `\s*` + salaryMult),
		sym: 1, min: 2, minMult: 3, max: 4, maxMult: 5,
	},
	{
		re: regexp.MustCompile(`(?i)` + salaryNumber + `\s*` + salaryMult + salarySep + salaryNumber + `\s*` + salaryMult + `\s*(` + salarySym + `)`),
		sym: 5, min: 1, minMult: 2, max: 3, maxMult: 4,
	},
	{
		re: regexp.MustCompile(`(?i)(?:salary|compensation|pay|ctc|package)(?:\s+range)?(?:\s+is)?[ \t:]*(` + salarySym + `)?\s*` + salaryNumber + `\s*` + salaryMult + salarySep + salarySym + `?\s*` + salaryNumber + `\s*` + salaryMult),
		sym: 1, min: 2, minMult: 3, max: 4, maxMult: 5,
	},
	{
		re: regexp.MustCompile(`(?i)` + salaryNumber + `\s*` + salaryMult + salarySep + salaryNumber + `\s*` + salaryMult + `\s*(?:per\s+(?:year|annum|pa|month|hour)|/\s*(?:year|yr|month|mo|hour|hr))`),
		min: 1, minMult: 2, max: 3, maxMult: 4,
	},
	{
		re: regexp.MustCompile(`(?i)up\s+to\s+(` + salarySym + `)?\s*` + salaryNumber + `\s*` + salaryMult),
		sym: 1, max: 2, maxMult: 3,
	},
}

// Symbol order is fixed so currency detection stays deterministic when a
// window happens to contain more than one cue.
var currencySymbols = []struct{ sym, code string }{
	{"$", "USD"},
	{"₹", "INR"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
}

var currencyCodes = []string{"USD", "EUR", "GBP", "JPY", "INR"}

func symbolCurrency(sym string) string {
	for _, entry := range currencySymbols {
		if entry.sym == sym {
			return entry.code
		}
	}
	return ""
}

// ExtractSalary parses a numeric salary range (or single "up to" bound) with
// its currency. Raw numbers are stored as written except for k and lakh
// multipliers, which are expanded. The default shape {0, 0, DefaultCurrency}
// is returned when no salary cue is found.
func ExtractSalary(text string) Salary {
	return extractSalary(text, DefaultCurrency)
}

func extractSalary(text string, defaultCurrency string) Salary {
	salary := Salary{Currency: defaultCurrency}

	for _, p := range salaryPatterns {
		loc := p.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		group := func(i int) string {
			if i == 0 || loc[2*i] < 0 {
				return ""
			}
			return text[loc[2*i]:loc[2*i+1]]
		}

		var min, max int
		var ok bool
		if p.min != 0 {
			if min, ok = parseAmount(group(p.min), group(p.minMult)); !ok {
				continue
			}
		}
		if max, ok = parseAmount(group(p.max), group(p.maxMult)); !ok {
			continue
		}
		salary.Min, salary.Max = min, max

		// Currency: an explicit symbol in the match wins; otherwise scan the
		// immediate neighborhood for symbols, codes, or rupee spellings.
		if code := symbolCurrency(group(p.sym)); code != "" {
			salary.Currency = code
		} else if code := detectCurrency(text, loc[0], loc[1]); code != "" {
			salary.Currency = code
		}
		break
	}

	return salary
}

// parseAmount converts a matched number and optional multiplier suffix into
// an integer amount. A lakh is 100,000.
func parseAmount(num, mult string) (int, bool) {
	if num == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(mult) {
	case "k":
		f *= 1000
	case "l", "lakh", "lakhs":
		f *= 100000
	}
	return int(f), true
}

// detectCurrency scans ten characters around the match for a currency cue.
func detectCurrency(text string, start, end int) string {
	lo := start - 10
	if lo < 0 {
		lo = 0
	}
	hi := end + 10
	if hi > len(text) {
		hi = len(text)
	}
	window := text[lo:hi]

	for _, entry := range currencySymbols {
		if strings.Contains(window, entry.sym) {
			return entry.code
		}
	}
	lower := strings.ToLower(window)
	for _, code := range currencyCodes {
		if strings.Contains(lower, strings.ToLower(code)) {
			return code
		}
	}
	if strings.Contains(lower, "rupee") || strings.Contains(lower, "rs.") || strings.Contains(lower, "rs ") {
		return "INR"
	}
	return ""
}
