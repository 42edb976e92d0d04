// Package seed loads a YAML case fixture through the store interfaces.
// The embedded default fixture is the Varma network demo case plus a
// handful of closed and active filler cases.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forensilink/backend/internal/store"
)

//go:embed fixture.yaml
var defaultFixture []byte

type fixtureEntity struct {
	ID        string         `yaml:"id"`
	Label     string         `yaml:"label"`
	Type      string         `yaml:"type"`
	Size      *int           `yaml:"size"`
	Icon      string         `yaml:"icon"`
	Metadata  map[string]any `yaml:"metadata"`
	Timestamp string         `yaml:"timestamp"`
}

type fixtureConnection struct {
	ID        string         `yaml:"id"`
	Source    string         `yaml:"source"`
	Target    string         `yaml:"target"`
	Type      string         `yaml:"type"`
	Weight    *int           `yaml:"weight"`
	Data      map[string]any `yaml:"data"`
	Timestamp string         `yaml:"timestamp"`
}

type fixtureCase struct {
	ID          string              `yaml:"id"`
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Status      string              `yaml:"status"`
	CrimeType   string              `yaml:"crime_type"`
	OfficerID   string              `yaml:"officer_id"`
	Entities    []fixtureEntity     `yaml:"entities"`
	Connections []fixtureConnection `yaml:"connections"`
}

type Fixture struct {
	Cases []fixtureCase `yaml:"cases"`
}

type Stats struct {
	Cases       int
	Entities    int
	Connections int
}

// Load parses the fixture at path, or the embedded default when path is
// empty.
func Load(path string) (*Fixture, error) {
	data := defaultFixture
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading fixture: %w", err)
		}
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// Apply creates every case, entity and connection in the fixture. It goes
// through the same store operations as the API, so all defaults and
// integrity checks apply. A fixture id colliding with existing data
// surfaces as the store's Conflict error.
func (f *Fixture) Apply(ctx context.Context, db store.Store) (Stats, error) {
	var stats Stats

	for _, fc := range f.Cases {
		_, err := db.CreateCase(ctx, store.CaseInput{
			ID:          fc.ID,
			Title:       fc.Title,
			Description: fc.Description,
			Status:      fc.Status,
			CrimeType:   fc.CrimeType,
			OfficerID:   fc.OfficerID,
		})
		if err != nil {
			return stats, fmt.Errorf("seeding case %q: %w", fc.ID, err)
		}
		stats.Cases++

		for _, fe := range fc.Entities {
			_, err := db.CreateEntity(ctx, fc.ID, store.EntityInput{
				ID:        fe.ID,
				Label:     fe.Label,
				Type:      fe.Type,
				Size:      fe.Size,
				Icon:      fe.Icon,
				Metadata:  fe.Metadata,
				Timestamp: fe.Timestamp,
			})
			if err != nil {
				return stats, fmt.Errorf("seeding entity %q in case %q: %w", fe.ID, fc.ID, err)
			}
			stats.Entities++
		}

		for _, fn := range fc.Connections {
			_, err := db.CreateConnection(ctx, fc.ID, store.ConnectionInput{
				ID:        fn.ID,
				Source:    fn.Source,
				Target:    fn.Target,
				Type:      fn.Type,
				Weight:    fn.Weight,
				Data:      fn.Data,
				Timestamp: fn.Timestamp,
			})
			if err != nil {
				return stats, fmt.Errorf("seeding connection %q in case %q: %w", fn.ID, fc.ID, err)
			}
			stats.Connections++
		}
	}

	return stats, nil
}
