package font

import (
	"fmt"
	"strings"
)

// Traits are style flags of a font variant.
type Traits uint8

// Font traits. Regular is the absence of any trait.
const (
	Bold Traits = 1 << iota
	Italic
)

// Regular denotes a font variant without traits.
const Regular Traits = 0

func (t Traits) String() string {
	switch t {
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case Bold | Italic:
		return "Bold Italic"
	}
	return fmt.Sprintf("Traits(%d)", uint8(t))
}

// Has is true if all of the traits in other are set for t.
func (t Traits) Has(other Traits) bool {
	return t&other == other
}

// Families of the default registry.
const (
	Go     = "Go"
	GoMono = "Go Mono"
)

// DefaultSize is the point size used for descriptors without a size.
const DefaultSize = 12.0

// Descriptor describes a font: a family, a point size and traits.
// Descriptors are values and may be compared with `==`.
type Descriptor struct {
	Family string
	Size   float64 // in points
	Traits Traits
}

// DefaultFont is the font used if clients do not set a base font.
var DefaultFont = Descriptor{Family: Go, Size: DefaultSize}

// IsVoid is true for a descriptor without a family.
func (d Descriptor) IsVoid() bool {
	return d.Family == ""
}

// WithSize returns a copy of d with point size s.
func (d Descriptor) WithSize(s float64) Descriptor {
	d.Size = s
	return d
}

// WithTraits returns a copy of d with traits t.
func (d Descriptor) WithTraits(t Traits) Descriptor {
	d.Traits = t
	return d
}

func (d Descriptor) String() string {
	if d.IsVoid() {
		return "[no font]"
	}
	return fmt.Sprintf("%s %s %gpt", d.Family, d.Traits, d.size())
}

func (d Descriptor) size() float64 {
	if d.Size <= 0 {
		return DefaultSize
	}
	return d.Size
}

func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
