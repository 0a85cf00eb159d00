// Package store is the in-memory record store for policyholders and claims.
//
// Nothing is persisted: all records are lost when the process exits.
package store

import (
	"context"
	"sync"

	"covera/internal/registry/models"
	id "covera/pkg/domain"
	"covera/pkg/platform/sentinel"
)

// ErrNotFound is returned when a policyholder lookup misses.
var ErrNotFound = sentinel.ErrNotFound

// Snapshot is a point-in-time copy of both collections in insertion order.
// Revision increases by one on every successful mutation.
type Snapshot struct {
	Revision      uint64
	Policyholders []models.Policyholder
	Claims        []models.Claim
}

// InMemory keeps both collections behind one RWMutex so readers always see
// policyholders and claims from the same moment.
//
// Identifiers come from counters owned by the store and advance in the same
// critical section as the append. They are never reused.
type InMemory struct {
	mu                 sync.RWMutex
	policyholders      []models.Policyholder
	byID               map[id.PolicyholderID]int
	claims             []models.Claim
	nextPolicyholderID id.PolicyholderID
	nextClaimID        id.ClaimID
	revision           uint64
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:               make(map[id.PolicyholderID]int),
		nextPolicyholderID: 1,
		nextClaimID:        1,
	}
}

// CreatePolicyholder assigns the next policyholder id and stores the record.
func (s *InMemory) CreatePolicyholder(_ context.Context, p models.NewPolicyholder) (models.Policyholder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.Policyholder{
		ID:         s.nextPolicyholderID,
		Name:       p.Name,
		Age:        p.Age,
		PolicyType: p.PolicyType,
		SumInsured: p.SumInsured,
	}
	s.nextPolicyholderID++
	s.byID[record.ID] = len(s.policyholders)
	s.policyholders = append(s.policyholders, record)
	s.revision++
	return record, nil
}

// CreateClaim assigns the next claim id and stores the record. The referenced
// policyholder is not checked.
func (s *InMemory) CreateClaim(_ context.Context, c models.NewClaim) (models.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.Claim{
		ID:             s.nextClaimID,
		PolicyholderID: c.PolicyholderID,
		Amount:         c.Amount,
		Reason:         c.Reason,
		Status:         c.Status,
		Date:           c.Date,
	}
	s.nextClaimID++
	s.claims = append(s.claims, record)
	s.revision++
	return record, nil
}

func (s *InMemory) FindPolicyholder(_ context.Context, pid id.PolicyholderID) (models.Policyholder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx, ok := s.byID[pid]; ok {
		return s.policyholders[idx], nil
	}
	return models.Policyholder{}, ErrNotFound
}

func (s *InMemory) ListPolicyholders(_ context.Context) ([]models.Policyholder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Policyholder{}, s.policyholders...), nil
}

func (s *InMemory) ListClaims(_ context.Context) ([]models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Claim{}, s.claims...), nil
}

// Snapshot copies both collections under a single read lock.
func (s *InMemory) Snapshot(_ context.Context) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Revision:      s.revision,
		Policyholders: append([]models.Policyholder{}, s.policyholders...),
		Claims:        append([]models.Claim{}, s.claims...),
	}, nil
}

// Revision reports the mutation counter without copying any records.
func (s *InMemory) Revision(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
