package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forensilink/backend/internal/store"
)

func (c *Client) CreateConnection(ctx context.Context, caseID string, in store.ConnectionInput) (*store.Connection, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, store.InvalidInputf("connection id is required")
	}
	if strings.TrimSpace(in.Source) == "" {
		return nil, store.InvalidInputf("connection source is required")
	}
	if strings.TrimSpace(in.Target) == "" {
		return nil, store.InvalidInputf("connection target is required")
	}
	if strings.TrimSpace(in.Type) == "" {
		return nil, store.InvalidInputf("connection type is required")
	}
	ts, err := store.ParseTimestamp(in.Timestamp)
	if err != nil {
		return nil, err
	}

	weight := store.DefaultConnectionWeight
	if in.Weight != nil {
		weight = *in.Weight
	}

	var dataJSON []byte
	if in.Data != nil {
		dataJSON, err = json.Marshal(in.Data)
		if err != nil {
			return nil, fmt.Errorf("marshaling connection data: %w", err)
		}
	}

	// source and target are stored as given; they are not checked against
	// the entity table, so the edge may reference ids that never arrive.
	query := `
INSERT INTO connections (id, case_id, source, target, type, weight, data, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

	_, err = c.pool.Exec(ctx, query, in.ID, caseID, in.Source, in.Target, in.Type, weight, dataJSON, ts)
	if err != nil {
		return nil, translateConstraint(err,
			fmt.Sprintf("connection %q already exists in case %q", in.ID, caseID),
			fmt.Sprintf("case %q", caseID),
		)
	}

	return &store.Connection{
		ID:     in.ID,
		CaseID: caseID,
		Source: in.Source,
		Target: in.Target,
		Type:   in.Type,
		Weight: weight,
		Data:   in.Data,
		Time:   ts,
	}, nil
}

func (c *Client) ListConnectionsByCase(ctx context.Context, caseID string) ([]store.Connection, error) {
	query := `
SELECT id, case_id, source, target, type, weight, data, occurred_at
FROM connections
WHERE case_id = $1
`

	rows, err := c.pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	defer rows.Close()

	connections := make([]store.Connection, 0)
	for rows.Next() {
		var cn store.Connection
		var dataJSON []byte
		err := rows.Scan(&cn.ID, &cn.CaseID, &cn.Source, &cn.Target, &cn.Type, &cn.Weight, &dataJSON, &cn.Time)
		if err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}
		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &cn.Data); err != nil {
				return nil, fmt.Errorf("unmarshaling connection data: %w", err)
			}
		}
		connections = append(connections, cn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating connections: %w", err)
	}
	return connections, nil
}
