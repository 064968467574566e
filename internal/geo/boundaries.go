// Package geo draws per-country values as filled country shapes.
package geo

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LookupError reports a country name missing from the reference boundaries.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("country %q not found in boundary data", e.Name)
}

// Boundaries indexes country shapes by name.
type Boundaries struct {
	byName map[string]orb.MultiPolygon
	all    []orb.MultiPolygon
}

// LoadBoundaries reads a GeoJSON FeatureCollection, naming features by nameProperty.
func LoadBoundaries(path, nameProperty string) (*Boundaries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundaries: %w", err)
	}
	return ParseBoundaries(data, nameProperty)
}

// ParseBoundaries is LoadBoundaries on in-memory GeoJSON.
func ParseBoundaries(data []byte, nameProperty string) (*Boundaries, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse boundaries: %w", err)
	}
	b := &Boundaries{byName: make(map[string]orb.MultiPolygon, len(fc.Features))}
	for _, f := range fc.Features {
		var mp orb.MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			mp = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			mp = g
		default:
			continue
		}
		b.all = append(b.all, mp)
		if name := f.Properties.MustString(nameProperty, ""); name != "" {
			b.byName[name] = mp
		}
	}
	if len(b.all) == 0 {
		return nil, fmt.Errorf("parse boundaries: no polygon features")
	}
	return b, nil
}

// Len is the number of named countries.
func (b *Boundaries) Len() int { return len(b.byName) }

// Lookup returns the shape of the named country.
func (b *Boundaries) Lookup(name string) (orb.MultiPolygon, error) {
	mp, ok := b.byName[name]
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return mp, nil
}
