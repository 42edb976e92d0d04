package store

import (
	"context"
	"time"
)

// Case is a top-level investigation record. It owns the entities and
// connections that reference it; deleting a case removes them with it.
type Case struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CrimeType   string    `json:"crime_type"`
	OfficerID   string    `json:"officer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Entity is a graph node scoped to a case. Type is an open string; the
// fixture vocabulary is person, phone, financial, location, keyword and
// organization, but unrecognized values are stored as-is.
type Entity struct {
	ID       string         `json:"id"`
	CaseID   string         `json:"case_id"`
	Label    string         `json:"label"`
	Type     string         `json:"type"`
	Size     int            `json:"size"`
	Icon     string         `json:"icon"`
	Metadata map[string]any `json:"metadata"`
	Time     *time.Time     `json:"timestamp"`
}

// Connection is a directed, typed, weighted edge between two entity ids
// within a case. Source and target are not resolved against the entity
// table, so edges may dangle.
type Connection struct {
	ID     string         `json:"id"`
	CaseID string         `json:"case_id"`
	Source string         `json:"source"`
	Target string         `json:"target"`
	Type   string         `json:"type"`
	Weight int            `json:"weight"`
	Data   map[string]any `json:"data"`
	Time   *time.Time     `json:"timestamp"`
}

// Graph is the assembled view of a case.
type Graph struct {
	Nodes []Entity     `json:"nodes"`
	Edges []Connection `json:"edges"`
}

// CaseInput carries the client-supplied fields for creating a case.
type CaseInput struct {
	ID          string
	Title       string
	Description string
	Status      string
	CrimeType   string
	OfficerID   string
}

// CasePatch is a partial update. Nil fields are left unchanged; there is
// no way to clear a field back to empty.
type CasePatch struct {
	Title       *string
	Description *string
	Status      *string
	CrimeType   *string
	OfficerID   *string
}

// EntityInput carries the client-supplied fields for creating an entity.
// Timestamp is an optional ISO-8601 string; Size defaults to 50.
type EntityInput struct {
	ID        string
	Label     string
	Type      string
	Size      *int
	Icon      string
	Metadata  map[string]any
	Timestamp string
}

// ConnectionInput carries the client-supplied fields for creating a
// connection. Weight defaults to 1.
type ConnectionInput struct {
	ID        string
	Source    string
	Target    string
	Type      string
	Weight    *int
	Data      map[string]any
	Timestamp string
}

const (
	DefaultEntitySize       = 50
	DefaultConnectionWeight = 1
	DefaultCaseStatus       = "active"
)

// CaseStore owns case metadata and the cascade to a case's children.
type CaseStore interface {
	CreateCase(ctx context.Context, in CaseInput) (*Case, error)
	GetCase(ctx context.Context, id string) (*Case, error)
	ListCases(ctx context.Context, filter CaseFilter) ([]Case, error)
	UpdateCase(ctx context.Context, id string, patch CasePatch) (*Case, error)
	// DeleteCase removes the case and every entity and connection that
	// references it, as a single unit of work.
	DeleteCase(ctx context.Context, id string) error
}

// EntityStore owns entity records. Entities are created and listed only;
// they go away with their case.
type EntityStore interface {
	CreateEntity(ctx context.Context, caseID string, in EntityInput) (*Entity, error)
	// ListEntitiesByCase returns the case's entities in no guaranteed order.
	ListEntitiesByCase(ctx context.Context, caseID string) ([]Entity, error)
}

// ConnectionStore owns connection records, with the same lifecycle as
// entities.
type ConnectionStore interface {
	CreateConnection(ctx context.Context, caseID string, in ConnectionInput) (*Connection, error)
	ListConnectionsByCase(ctx context.Context, caseID string) ([]Connection, error)
}

// Store is the full persistence surface. Implementations are postgres
// (production) and memory (tests, DB-less runs).
type Store interface {
	CaseStore
	EntityStore
	ConnectionStore
}
