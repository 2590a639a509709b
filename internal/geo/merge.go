package geo

import (
	"errors"
	"fmt"

	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

// ErrSchemaMismatch reports a collection whose features do not carry the
// canonical property set. A mismatch aborts the merge instead of silently
// dropping properties.
var ErrSchemaMismatch = errors.New("schema mismatch")

// FilterOut returns a collection without any feature of the given class.
func FilterOut(fc FeatureCollection, class openair.Class) FeatureCollection {
	out := NewFeatureCollection()
	for _, f := range fc.Features {
		if f.Properties.Class != class {
			out.Features = append(out.Features, f)
		}
	}
	return out
}

// KeepOnly returns a collection with only features of the given class.
func KeepOnly(fc FeatureCollection, class openair.Class) FeatureCollection {
	out := NewFeatureCollection()
	for _, f := range fc.Features {
		if f.Properties.Class == class {
			out.Features = append(out.Features, f)
		}
	}
	return out
}

// Merge concatenates two collections. There is deliberately no
// deduplication and no geometric overlap resolution: the two sources are
// partitioned by class upstream and identity is the (name, class) pair.
// Both inputs must already match the canonical schema.
func Merge(primary, secondary FeatureCollection) (FeatureCollection, error) {
	if err := ValidateSchema(primary); err != nil {
		return FeatureCollection{}, fmt.Errorf("primary: %w", err)
	}
	if err := ValidateSchema(secondary); err != nil {
		return FeatureCollection{}, fmt.Errorf("secondary: %w", err)
	}

	out := NewFeatureCollection()
	out.Features = append(out.Features, primary.Features...)
	out.Features = append(out.Features, secondary.Features...)
	return out, nil
}

// ValidateSchema checks that every feature carries the canonical property
// shape and a typed geometry. An empty name is allowed: a source block
// without an AN record is still a real airspace.
func ValidateSchema(fc FeatureCollection) error {
	if fc.Type != "FeatureCollection" {
		return fmt.Errorf("%w: collection type is %q", ErrSchemaMismatch, fc.Type)
	}
	for i, f := range fc.Features {
		switch {
		case f.Type != "Feature":
			return fmt.Errorf("%w: feature %d type is %q", ErrSchemaMismatch, i, f.Type)
		case f.Properties.Class == "":
			return fmt.Errorf("%w: feature %d (%s) has no class", ErrSchemaMismatch, i, f.Properties.Name)
		case f.Properties.Source == "":
			return fmt.Errorf("%w: feature %d (%s) has no source tag", ErrSchemaMismatch, i, f.Properties.Name)
		case f.Geometry.Type == "":
			return fmt.Errorf("%w: feature %d (%s) has no geometry", ErrSchemaMismatch, i, f.Properties.Name)
		}
	}
	return nil
}
