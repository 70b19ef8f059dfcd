package detect

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// Type is a bitmask of detector categories.
type Type uint32

// Detector categories.
const (
	Link Type = 1 << iota
	Date
	PhoneNumber
	Address
	TransitInformation
)

// Supported holds every category this package is able to detect.
const Supported = Link | Date | PhoneNumber

var typeNames = []string{"link", "date", "phone", "address", "transit"}

func (t Type) String() string {
	if t == 0 {
		return "none"
	}
	var names []string
	for i, name := range typeNames {
		if t&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if rest := t &^ (Type(1)<<len(typeNames) - 1); rest != 0 {
		names = append(names, fmt.Sprintf("Type(%#x)", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// Result is a single entity found in a text.
type Result struct {
	Type  Type
	Start int // byte offset of the first byte
	End   int // byte offset after the last byte
	Text  string
	URL   *url.URL  // for links and phone numbers (tel: URL)
	Date  time.Time // for dates
	Phone string    // for phone numbers: E.164 form
}

// Detector scans texts for entities of a set of categories.
// A Detector holds no mutable state and may be shared.
type Detector struct {
	types Type
}

// New creates a detector for the categories in types. If types is empty or
// contains an unsupported category, ErrUnavailable is returned.
func New(types Type) (*Detector, error) {
	if types == 0 {
		return nil, fmt.Errorf("%w: no category selected", ErrUnavailable)
	}
	if missing := types &^ Supported; missing != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, missing)
	}
	return &Detector{types: types}, nil
}

// Types returns the categories this detector scans for.
func (d *Detector) Types() Type {
	return d.types
}

// Find returns all entities in text, ordered by start position. Entities of
// different categories may overlap.
func (d *Detector) Find(text string) []Result {
	var results []Result
	if d.types&Link != 0 {
		results = append(results, findLinks(text)...)
	}
	if d.types&Date != 0 {
		results = append(results, findDates(text)...)
	}
	if d.types&PhoneNumber != 0 {
		results = append(results, findPhoneNumbers(text)...)
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		return a.Start - b.Start
	})
	tracer().Debugf("detector %s found %d entities", d.types, len(results))
	return results
}
