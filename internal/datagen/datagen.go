// Package datagen fills a store with synthetic investigation data for
// load testing and demos. Everything goes through the store interfaces,
// so generated records get the same defaults and checks as API input.
package datagen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/forensilink/backend/internal/store"
)

// Config bounds the generated dataset. Entity and connection counts are
// drawn per case from [Min, Max].
type Config struct {
	Cases          int
	MinEntities    int
	MaxEntities    int
	MinConnections int
	MaxConnections int
	Seed           int64
}

// DefaultConfig generates a small dataset, comparable in size to the
// bundled fixture.
func DefaultConfig() Config {
	return Config{
		Cases:          10,
		MinEntities:    4,
		MaxEntities:    12,
		MinConnections: 3,
		MaxConnections: 20,
	}
}

var (
	crimeTypes = []string{
		"Theft", "Fraud", "Cybercrime", "Narcotics", "Homicide",
		"Conspiracy", "Money Laundering", "Extortion",
	}
	entityTypes     = []string{"person", "phone", "financial", "location", "keyword", "organization"}
	connectionTypes = []string{
		"Signal Chat", "SMS", "Phone Call", "Encrypted Call",
		"Transaction", "GPS Co-location", "Keyword Mention",
	}
	entityIcons = map[string]string{
		"person":       "👤",
		"phone":        "📱",
		"financial":    "💰",
		"location":     "📍",
		"keyword":      "🔑",
		"organization": "🏢",
	}
)

// Generate creates cfg.Cases cases with random entities and connections.
// Connections reference entity ids within the same case, so generated
// graphs never dangle. Returns the totals created.
func Generate(ctx context.Context, db store.Store, cfg Config) (cases, entities, connections int, err error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	faker := gofakeit.New(seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < cfg.Cases; i++ {
		caseID := fmt.Sprintf("%d-%03d", 2020+rng.Intn(7), 100+i)
		crime := crimeTypes[rng.Intn(len(crimeTypes))]
		status := "active"
		if rng.Intn(3) == 0 {
			status = "closed"
		}

		_, cerr := db.CreateCase(ctx, store.CaseInput{
			ID:          caseID,
			Title:       fmt.Sprintf("%s Investigation - %s", crime, faker.City()),
			Description: faker.Sentence(12),
			Status:      status,
			CrimeType:   crime,
			OfficerID:   fmt.Sprintf("IO-%d", 1000+rng.Intn(9000)),
		})
		if cerr != nil {
			return cases, entities, connections, fmt.Errorf("generating case %q: %w", caseID, cerr)
		}
		cases++

		entityIDs := make([]string, 0, cfg.MaxEntities)
		n := spanInt(rng, cfg.MinEntities, cfg.MaxEntities)
		for j := 0; j < n; j++ {
			typ := entityTypes[rng.Intn(len(entityTypes))]
			size := 30 + rng.Intn(70)
			entityID := fmt.Sprintf("ent-%03d", j+1)

			_, eerr := db.CreateEntity(ctx, caseID, store.EntityInput{
				ID:    entityID,
				Label: entityLabel(faker, typ),
				Type:  typ,
				Size:  &size,
				Icon:  entityIcons[typ],
				Metadata: map[string]any{
					"role":         faker.JobTitle(),
					"interactions": rng.Intn(5000),
				},
				Timestamp: randomTimestamp(faker),
			})
			if eerr != nil {
				return cases, entities, connections, fmt.Errorf("generating entity in case %q: %w", caseID, eerr)
			}
			entities++
			entityIDs = append(entityIDs, entityID)
		}

		if len(entityIDs) < 2 {
			continue
		}
		m := spanInt(rng, cfg.MinConnections, cfg.MaxConnections)
		for j := 0; j < m; j++ {
			source := entityIDs[rng.Intn(len(entityIDs))]
			target := entityIDs[rng.Intn(len(entityIDs))]
			if source == target {
				continue
			}
			weight := 1 + rng.Intn(500)

			_, nerr := db.CreateConnection(ctx, caseID, store.ConnectionInput{
				ID:     fmt.Sprintf("edge-%03d", j+1),
				Source: source,
				Target: target,
				Type:   connectionTypes[rng.Intn(len(connectionTypes))],
				Weight: &weight,
				Data: map[string]any{
					"snippet":   faker.Sentence(8),
					"frequency": faker.RandomString([]string{"Daily", "Weekly", "Regular", "Frequent"}),
				},
				Timestamp: randomTimestamp(faker),
			})
			if nerr != nil {
				return cases, entities, connections, fmt.Errorf("generating connection in case %q: %w", caseID, nerr)
			}
			connections++
		}
	}

	return cases, entities, connections, nil
}

func entityLabel(faker *gofakeit.Faker, typ string) string {
	switch typ {
	case "person":
		return faker.Name()
	case "phone":
		return faker.Phone()
	case "financial":
		return fmt.Sprintf("Wallet %s", faker.LetterN(6))
	case "location":
		return faker.Street()
	case "keyword":
		return faker.HackerNoun()
	default:
		return faker.Company()
	}
}

func randomTimestamp(faker *gofakeit.Faker) string {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	return faker.DateRange(start, end).UTC().Format("2006-01-02T15:04:05")
}

func spanInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
