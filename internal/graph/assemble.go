// Package graph builds the node/edge view of a case from the entity and
// connection stores.
package graph

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/forensilink/backend/internal/store"
)

// Provider serves assembled case graphs. Implementations are the plain
// Assembler and the redis-backed cache wrapping it.
type Provider interface {
	Assemble(ctx context.Context, caseID string) (*store.Graph, error)
	// Invalidate drops any cached view of the case. Called after every
	// mutation that can change the graph.
	Invalidate(ctx context.Context, caseID string) error
}

type Assembler struct {
	cases       store.CaseStore
	entities    store.EntityStore
	connections store.ConnectionStore
}

var _ Provider = (*Assembler)(nil)

func NewAssembler(cases store.CaseStore, entities store.EntityStore, connections store.ConnectionStore) *Assembler {
	return &Assembler{
		cases:       cases,
		entities:    entities,
		connections: connections,
	}
}

// Assemble returns the exact union of the case's entity and connection
// listings. The graph may be disconnected, cyclic, or contain dangling
// edges; no dedup or analysis happens here.
func (a *Assembler) Assemble(ctx context.Context, caseID string) (*store.Graph, error) {
	if _, err := a.cases.GetCase(ctx, caseID); err != nil {
		return nil, err
	}

	var (
		nodes []store.Entity
		edges []store.Connection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nodes, err = a.entities.ListEntitiesByCase(gctx, caseID)
		return err
	})
	g.Go(func() error {
		var err error
		edges, err = a.connections.ListConnectionsByCase(gctx, caseID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if nodes == nil {
		nodes = []store.Entity{}
	}
	if edges == nil {
		edges = []store.Connection{}
	}
	return &store.Graph{Nodes: nodes, Edges: edges}, nil
}

// Invalidate is a no-op; the plain assembler reads through on every call.
func (a *Assembler) Invalidate(ctx context.Context, caseID string) error {
	return nil
}
