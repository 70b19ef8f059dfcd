package detect

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
	"mvdan.cc/xurls/v2"
)

// --- Links -----------------------------------------------------------------

var linkPattern = xurls.Relaxed()

func findLinks(text string) []Result {
	var results []Result
	for _, loc := range linkPattern.FindAllStringIndex(text, -1) {
		s := text[loc[0]:loc[1]]
		u, err := url.Parse(withScheme(s))
		if err != nil {
			tracer().Debugf("link detector: skipping %q: %v", s, err)
			continue
		}
		results = append(results, Result{
			Type:  Link,
			Start: loc[0],
			End:   loc[1],
			Text:  s,
			URL:   u,
		})
	}
	return results
}

// withScheme prepends a scheme to links written without one.
func withScheme(s string) string {
	if strings.Contains(s, "://") || strings.HasPrefix(strings.ToLower(s), "mailto:") {
		return s
	}
	if strings.Contains(s, "@") {
		return "mailto:" + s
	}
	return "http://" + s
}

// --- Dates -----------------------------------------------------------------

const months = `(January|February|March|April|May|June|July|August|September|October|November|December|` +
	`Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)`

type dateFormat struct {
	pattern *regexp.Regexp
	parse   func(m []string) (time.Time, error)
}

var dateFormats = []dateFormat{
	{ // 2024-01-15
		pattern: regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`),
		parse: func(m []string) (time.Time, error) {
			return time.Parse("2006-01-02", m[1])
		},
	},
	{ // 1/15/2024
		pattern: regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`),
		parse: func(m []string) (time.Time, error) {
			return time.Parse("1/2/2006", m[1])
		},
	},
	{ // January 15, 2024 or Jan. 15th 2024
		pattern: regexp.MustCompile(`\b` + months + `\.? (\d{1,2})(?:st|nd|rd|th)?,? (\d{4})\b`),
		parse: func(m []string) (time.Time, error) {
			return parseMonthDayYear(m[1], m[2], m[3])
		},
	},
	{ // 15 January 2024
		pattern: regexp.MustCompile(`\b(\d{1,2}) ` + months + `\.?,? (\d{4})\b`),
		parse: func(m []string) (time.Time, error) {
			return parseMonthDayYear(m[2], m[1], m[3])
		},
	},
}

func parseMonthDayYear(month, day, year string) (time.Time, error) {
	if len(month) > 3 {
		month = month[:3]
	}
	return time.Parse("Jan 2 2006", month+" "+day+" "+year)
}

func findDates(text string) []Result {
	var results []Result
	taken := func(start, end int) bool {
		for _, r := range results {
			if start < r.End && r.Start < end {
				return true
			}
		}
		return false
	}
	for _, f := range dateFormats {
		for _, loc := range f.pattern.FindAllStringSubmatchIndex(text, -1) {
			if taken(loc[0], loc[1]) {
				continue
			}
			m := submatches(text, loc)
			date, err := f.parse(m)
			if err != nil {
				tracer().Debugf("date detector: skipping %q: %v", m[0], err)
				continue
			}
			results = append(results, Result{
				Type:  Date,
				Start: loc[0],
				End:   loc[1],
				Text:  m[0],
				Date:  date,
			})
		}
	}
	return results
}

func submatches(text string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}

// --- Phone numbers ---------------------------------------------------------

var phonePattern = regexp.MustCompile(
	`(?:\+\d{1,3}[ .-]?)?(?:\(\d{2,4}\)|\d{2,4})[ .-]?\d{3,4}[ .-]?\d{3,4}`)

// DefaultRegion is the region for phone numbers written without an
// international prefix (CLDR region code).
const DefaultRegion = "US"

func findPhoneNumbers(text string) []Result {
	var results []Result
	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		if !standsAlone(text, loc[0], loc[1]) {
			continue
		}
		s := text[loc[0]:loc[1]]
		num, err := phonenumbers.Parse(s, DefaultRegion)
		if err != nil || !phonenumbers.IsPossibleNumber(num) {
			tracer().Debugf("phone detector: skipping %q", s)
			continue
		}
		number := phonenumbers.Format(num, phonenumbers.E164)
		results = append(results, Result{
			Type:  PhoneNumber,
			Start: loc[0],
			End:   loc[1],
			Text:  s,
			URL:   &url.URL{Scheme: "tel", Opaque: number},
			Phone: number,
		})
	}
	return results
}

// standsAlone checks that a match is not part of a longer word or number.
func standsAlone(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '/' || r == '-' {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '/' || r == '-' {
			return false
		}
	}
	return true
}
