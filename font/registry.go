package font

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang/freetype/truetype"
	gocache "github.com/patrickmn/go-cache"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Faces are dropped from the cache if they have not been used for a while.
const (
	faceExpiration  = 10 * time.Minute
	cleanupInterval = 30 * time.Minute
)

// Faces are created at 72 DPI, making one pixel equal to one point.
const dpi = 72

// Registry holds named font variants, grouped by family.
//
// A registry is safe for concurrent use. Faces are created on demand and
// cached; measurement through the registry serializes access to the faces,
// as faces of package x/image/font are not safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]map[Traits]*truetype.Font
	names    map[string]string // family key -> family name as registered
	faces    *gocache.Cache
	measure  sync.Mutex
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]map[Traits]*truetype.Font),
		names:    make(map[string]string),
		faces:    gocache.New(faceExpiration, cleanupInterval),
	}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// DefaultRegistry returns a shared registry with the Go font families
// "Go" and "Go Mono" in regular, bold, italic and bold-italic.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		variants := []struct {
			family string
			traits Traits
			ttf    []byte
		}{
			{Go, Regular, goregular.TTF},
			{Go, Bold, gobold.TTF},
			{Go, Italic, goitalic.TTF},
			{Go, Bold | Italic, gobolditalic.TTF},
			{GoMono, Regular, gomono.TTF},
			{GoMono, Bold, gomonobold.TTF},
			{GoMono, Italic, gomonoitalic.TTF},
			{GoMono, Bold | Italic, gomonobolditalic.TTF},
		}
		for _, v := range variants {
			if err := r.Register(v.family, v.traits, v.ttf); err != nil {
				tracer().Errorf("font registry: cannot register %s %s: %v", v.family, v.traits, err)
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds a font variant of a family. ttf is the content of a
// TrueType font file. Registering a variant twice replaces the earlier one.
func (r *Registry) Register(family string, traits Traits, ttf []byte) error {
	key := familyKey(family)
	if key == "" {
		return fmt.Errorf("%w: empty family name", ErrFontData)
	}
	ft, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrFontData, family, traits, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.families[key] == nil {
		r.families[key] = make(map[Traits]*truetype.Font)
		r.names[key] = strings.TrimSpace(family)
	}
	r.families[key][traits] = ft
	r.dropFaces(key)
	tracer().Debugf("font registry: registered %s %s", family, traits)
	return nil
}

// dropFaces removes cached faces of a family. Caller must hold r.mu.
func (r *Registry) dropFaces(key string) {
	for k := range r.faces.Items() {
		if strings.HasPrefix(k, key+"/") {
			r.faces.Delete(k)
		}
	}
}

// Has is true if the exact variant of d is registered.
func (r *Registry) Has(d Descriptor) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.families[familyKey(d.Family)][d.Traits]
	return ok
}

// Resolve looks up the variant of base with traits bold and/or italic added,
// at the same point size. If no such variant is registered, base is returned
// unmodified. Resolve does not fail.
func (r *Registry) Resolve(base Descriptor, bold, italic bool) Descriptor {
	want := base.Traits
	if bold {
		want |= Bold
	}
	if italic {
		want |= Italic
	}
	if want == base.Traits {
		return base
	}
	variant := base.WithTraits(want)
	if !r.Has(variant) {
		tracer().Debugf("font registry: no variant %s, using %s", variant, base)
		return base
	}
	r.mu.RLock()
	variant.Family = r.names[familyKey(base.Family)]
	r.mu.RUnlock()
	return variant
}

// Face returns a font face for d. If the exact variant of d is not
// registered, the regular variant of d's family is used.
func (r *Registry) Face(d Descriptor) (xfont.Face, error) {
	key := faceKey(d)
	if f, found := r.faces.Get(key); found {
		if face, ok := f.(xfont.Face); ok {
			return face, nil
		}
		tracer().Errorf("font registry: wrong type in face cache for key %s", key)
	}
	r.mu.RLock()
	variants := r.families[familyKey(d.Family)]
	ft, ok := variants[d.Traits]
	if !ok {
		ft, ok = variants[Regular]
	}
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, d)
	}
	face := truetype.NewFace(ft, &truetype.Options{
		Size:    d.size(),
		DPI:     dpi,
		Hinting: xfont.HintingNone,
	})
	r.faces.SetDefault(key, face)
	return face, nil
}

func faceKey(d Descriptor) string {
	return fmt.Sprintf("%s/%d/%g", familyKey(d.Family), d.Traits, d.size())
}

// Metrics are vertical metrics of a font, in points.
type Metrics struct {
	Height  float64 // recommended line height
	Ascent  float64
	Descent float64
}

// Metrics returns the vertical metrics of d. For unknown fonts an
// approximation from the point size is returned.
func (r *Registry) Metrics(d Descriptor) Metrics {
	face, err := r.Face(d)
	if err != nil {
		s := d.size()
		return Metrics{Height: 1.2 * s, Ascent: 0.8 * s, Descent: 0.2 * s}
	}
	r.measure.Lock()
	m := face.Metrics()
	r.measure.Unlock()
	return Metrics{
		Height:  toFloat(m.Height),
		Ascent:  toFloat(m.Ascent),
		Descent: toFloat(m.Descent),
	}
}

// Advance returns the width of s set in font d, in points. For unknown fonts
// an approximation of half an em per rune is returned.
func (r *Registry) Advance(d Descriptor, s string) float64 {
	if s == "" {
		return 0
	}
	face, err := r.Face(d)
	if err != nil {
		return 0.5 * d.size() * float64(len([]rune(s)))
	}
	r.measure.Lock()
	defer r.measure.Unlock()
	return toFloat(xfont.MeasureString(face, s))
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
