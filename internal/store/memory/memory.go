// Package memory holds an in-memory Store with the same contract as the
// postgres implementation. It backs unit tests and DATABASE_URL-less runs.
package memory

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/forensilink/backend/internal/store"
)

type Store struct {
	mu          sync.RWMutex
	cases       map[string]store.Case
	caseOrder   []string
	entities    map[string][]store.Entity
	connections map[string][]store.Connection
}

var _ store.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		cases:       make(map[string]store.Case),
		entities:    make(map[string][]store.Entity),
		connections: make(map[string][]store.Connection),
	}
}

func (s *Store) CreateCase(ctx context.Context, in store.CaseInput) (*store.Case, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, store.InvalidInputf("case id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, store.InvalidInputf("case title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[in.ID]; ok {
		return nil, store.Conflictf("case %q already exists", in.ID)
	}

	status := in.Status
	if status == "" {
		status = store.DefaultCaseStatus
	}
	now := time.Now().UTC()
	c := store.Case{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		CrimeType:   in.CrimeType,
		OfficerID:   in.OfficerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.cases[c.ID] = c
	s.caseOrder = append(s.caseOrder, c.ID)
	return &c, nil
}

func (s *Store) GetCase(ctx context.Context, id string) (*store.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, store.NotFoundf("case %q", id)
	}
	return &c, nil
}

func (s *Store) ListCases(ctx context.Context, filter store.CaseFilter) ([]store.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]store.Case, 0, len(s.caseOrder))
	for _, id := range s.caseOrder {
		all = append(all, s.cases[id])
	}
	return filter.Apply(all), nil
}

func (s *Store) UpdateCase(ctx context.Context, id string, patch store.CasePatch) (*store.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, store.NotFoundf("case %q", id)
	}

	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.CrimeType != nil {
		c.CrimeType = *patch.CrimeType
	}
	if patch.OfficerID != nil {
		c.OfficerID = *patch.OfficerID
	}

	now := time.Now().UTC()
	if !now.After(c.UpdatedAt) {
		now = c.UpdatedAt.Add(time.Nanosecond)
	}
	c.UpdatedAt = now

	s.cases[id] = c
	return &c, nil
}

func (s *Store) DeleteCase(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[id]; !ok {
		return store.NotFoundf("case %q", id)
	}
	delete(s.cases, id)
	delete(s.entities, id)
	delete(s.connections, id)
	for i, cid := range s.caseOrder {
		if cid == id {
			s.caseOrder = append(s.caseOrder[:i], s.caseOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) CreateEntity(ctx context.Context, caseID string, in store.EntityInput) (*store.Entity, error) {
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

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[caseID]; !ok {
		return nil, store.NotFoundf("case %q", caseID)
	}
	for _, e := range s.entities[caseID] {
		if e.ID == in.ID {
			return nil, store.Conflictf("entity %q already exists in case %q", in.ID, caseID)
		}
	}

	size := store.DefaultEntitySize
	if in.Size != nil {
		size = *in.Size
	}
	e := store.Entity{
		ID:       in.ID,
		CaseID:   caseID,
		Label:    in.Label,
		Type:     in.Type,
		Size:     size,
		Icon:     in.Icon,
		Metadata: maps.Clone(in.Metadata),
		Time:     ts,
	}
	s.entities[caseID] = append(s.entities[caseID], e)
	return &e, nil
}

func (s *Store) ListEntitiesByCase(ctx context.Context, caseID string) ([]store.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Entity, len(s.entities[caseID]))
	copy(out, s.entities[caseID])
	return out, nil
}

func (s *Store) CreateConnection(ctx context.Context, caseID string, in store.ConnectionInput) (*store.Connection, error) {
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

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[caseID]; !ok {
		return nil, store.NotFoundf("case %q", caseID)
	}
	for _, c := range s.connections[caseID] {
		if c.ID == in.ID {
			return nil, store.Conflictf("connection %q already exists in case %q", in.ID, caseID)
		}
	}

	weight := store.DefaultConnectionWeight
	if in.Weight != nil {
		weight = *in.Weight
	}
	c := store.Connection{
		ID:     in.ID,
		CaseID: caseID,
		Source: in.Source,
		Target: in.Target,
		Type:   in.Type,
		Weight: weight,
		Data:   maps.Clone(in.Data),
		Time:   ts,
	}
	s.connections[caseID] = append(s.connections[caseID], c)
	return &c, nil
}

func (s *Store) ListConnectionsByCase(ctx context.Context, caseID string) ([]store.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Connection, len(s.connections[caseID]))
	copy(out, s.connections[caseID])
	return out, nil
}
