// Package seed loads YAML fixtures and writes them through the collection
// access layer. It backs the CLI's seed command.
package seed

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

// Fixture is the parsed form of a seed file:
//
//	collections:
//	  accommodations:
//	    - heading: Sea View Suite
//	      amenities: [wifi, minibar]
//	  users:
//	    - email: frontdesk@hotel.test
type Fixture struct {
	Collections map[string][]map[string]any `yaml:"collections"`
}

// Creator is the slice of the access layer seeding needs.
type Creator interface {
	Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error)
}

// Load reads and parses the fixture at path.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("seed.Load: %w", err)
	}
	return Parse(data)
}

// Parse parses fixture YAML. Collection names are validated up front so a bad
// file writes nothing.
func Parse(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("seed.Parse: %w: %w", domain.ErrValidation, err)
	}
	for name := range f.Collections {
		if err := domain.ValidateCollection(name); err != nil {
			return Fixture{}, fmt.Errorf("seed.Parse: %w", err)
		}
	}
	return f, nil
}

// Apply creates every fixture record, collection by collection in name order,
// and returns how many records each collection received. It stops at the
// first failure; records created before it stay.
func Apply(ctx context.Context, c Creator, f Fixture) (map[string]int, error) {
	names := make([]string, 0, len(f.Collections))
	for name := range f.Collections {
		names = append(names, name)
	}
	slices.Sort(names)

	counts := make(map[string]int, len(names))
	for _, name := range names {
		for _, doc := range f.Collections[name] {
			if _, err := c.Create(ctx, name, normalize(doc).(map[string]any)); err != nil {
				return counts, fmt.Errorf("seed.Apply: %s: %w", name, err)
			}
			counts[name]++
		}
	}
	return counts, nil
}

// normalize converts YAML-decoded values to the shapes the JSON decoder
// produces, so seeded records look like records created over HTTP.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	default:
		return val
	}
}
