package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/internal/util"
)

const caseColumns = "id, title, description, status, crime_type, officer_id, created_at, updated_at"

func scanCase(row pgx.Row) (*store.Case, error) {
	var c store.Case
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Status,
		&c.CrimeType,
		&c.OfficerID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Client) CreateCase(ctx context.Context, in store.CaseInput) (*store.Case, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, store.InvalidInputf("case id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, store.InvalidInputf("case title is required")
	}

	status := in.Status
	if status == "" {
		status = store.DefaultCaseStatus
	}

	query := `
INSERT INTO cases (id, title, description, status, crime_type, officer_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING ` + caseColumns

	title := util.SanitizePostgresText(in.Title)
	description := util.SanitizePostgresText(in.Description)

	row := c.pool.QueryRow(ctx, query, in.ID, title, description, status, in.CrimeType, in.OfficerID)
	created, err := scanCase(row)
	if err != nil {
		err = translateConstraint(err,
			fmt.Sprintf("case %q already exists", in.ID),
			fmt.Sprintf("case %q", in.ID),
		)
		return nil, err
	}
	return created, nil
}

func (c *Client) GetCase(ctx context.Context, id string) (*store.Case, error) {
	row := c.pool.QueryRow(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = $1`, id)
	found, err := scanCase(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.NotFoundf("case %q", id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting case: %w", err)
	}
	return found, nil
}

func (c *Client) ListCases(ctx context.Context, filter store.CaseFilter) ([]store.Case, error) {
	query := `
SELECT ` + caseColumns + `
FROM cases
WHERE ($1 = '' OR status = $1)
  AND ($2 = '' OR crime_type = $2)
  AND ($3 = '' OR officer_id = $3)
  AND ($4 = '' OR title ILIKE '%' || $4 || '%')
ORDER BY created_at, id
`

	rows, err := c.pool.Query(ctx, query, filter.Status, filter.CrimeType, filter.OfficerID, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	defer rows.Close()

	cases := make([]store.Case, 0)
	for rows.Next() {
		found, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning case: %w", err)
		}
		cases = append(cases, *found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cases: %w", err)
	}
	return cases, nil
}

func (c *Client) UpdateCase(ctx context.Context, id string, patch store.CasePatch) (*store.Case, error) {
	// Nil patch fields become NULL and fall through COALESCE untouched.
	// updated_at always moves strictly forward, even inside one clock tick.
	query := `
UPDATE cases
SET title       = COALESCE($2, title),
    description = COALESCE($3, description),
    status      = COALESCE($4, status),
    crime_type  = COALESCE($5, crime_type),
    officer_id  = COALESCE($6, officer_id),
    updated_at  = GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')
WHERE id = $1
RETURNING ` + caseColumns

	row := c.pool.QueryRow(ctx, query, id, patch.Title, patch.Description, patch.Status, patch.CrimeType, patch.OfficerID)
	updated, err := scanCase(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.NotFoundf("case %q", id)
	}
	if err != nil {
		return nil, fmt.Errorf("updating case: %w", err)
	}
	return updated, nil
}

// DeleteCase removes the case and its entities and connections in one
// transaction; either everything goes or nothing does.
func (c *Client) DeleteCase(ctx context.Context, id string) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM connections WHERE case_id = $1`, id); err != nil {
		return fmt.Errorf("deleting case connections: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM entities WHERE case_id = $1`, id); err != nil {
		return fmt.Errorf("deleting case entities: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.NotFoundf("case %q", id)
	}

	return tx.Commit(ctx)
}
