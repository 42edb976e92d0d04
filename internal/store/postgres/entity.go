package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/internal/util"
)

func (c *Client) CreateEntity(ctx context.Context, caseID string, in store.EntityInput) (*store.Entity, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, store.InvalidInputf("entity id is required")
	}
	if strings.TrimSpace(in.Label) == "" {
		return nil, store.InvalidInputf("entity label is required")
	}
	if strings.TrimSpace(in.Type) == "" {
		return nil, store.InvalidInputf("entity type is required")
	}
	ts, err := store.ParseTimestamp(in.Timestamp)
	if err != nil {
		return nil, err
	}

	size := store.DefaultEntitySize
	if in.Size != nil {
		size = *in.Size
	}

	var metaJSON []byte
	if in.Metadata != nil {
		metaJSON, err = json.Marshal(in.Metadata)
		if err != nil {
			return nil, fmt.Errorf("marshaling entity metadata: %w", err)
		}
	}

	query := `
INSERT INTO entities (id, case_id, label, type, size, icon, metadata, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

	label := util.SanitizePostgresText(in.Label)

	_, err = c.pool.Exec(ctx, query, in.ID, caseID, label, in.Type, size, in.Icon, metaJSON, ts)
	if err != nil {
		return nil, translateConstraint(err,
			fmt.Sprintf("entity %q already exists in case %q", in.ID, caseID),
			fmt.Sprintf("case %q", caseID),
		)
	}

	return &store.Entity{
		ID:       in.ID,
		CaseID:   caseID,
		Label:    label,
		Type:     in.Type,
		Size:     size,
		Icon:     in.Icon,
		Metadata: in.Metadata,
		Time:     ts,
	}, nil
}

func (c *Client) ListEntitiesByCase(ctx context.Context, caseID string) ([]store.Entity, error) {
	query := `
SELECT id, case_id, label, type, size, icon, metadata, occurred_at
FROM entities
WHERE case_id = $1
`

	rows, err := c.pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	entities := make([]store.Entity, 0)
	for rows.Next() {
		var e store.Entity
		var metaJSON []byte
		err := rows.Scan(&e.ID, &e.CaseID, &e.Label, &e.Type, &e.Size, &e.Icon, &metaJSON, &e.Time)
		if err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &e.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshaling entity metadata: %w", err)
			}
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}
	return entities, nil
}
