package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"covera/internal/registry/models"
	id "covera/pkg/domain"
	"covera/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) register(name string) models.Policyholder {
	p, err := s.store.CreatePolicyholder(s.ctx, models.NewPolicyholder{
		Name:       name,
		Age:        40,
		PolicyType: models.PolicyTypeHealth,
		SumInsured: 1000,
	})
	s.Require().NoError(err)
	return p
}

func (s *InMemoryStoreSuite) submit(pid id.PolicyholderID, amount float64) models.Claim {
	c, err := s.store.CreateClaim(s.ctx, models.NewClaim{
		PolicyholderID: pid,
		Amount:         amount,
		Reason:         "test",
		Status:         models.ClaimStatusPending,
		Date:           models.NewDate(2025, time.May, 1),
	})
	s.Require().NoError(err)
	return c
}

// TestIdentifierSequences verifies both id sequences start at 1, have no gaps,
// and advance independently.
func (s *InMemoryStoreSuite) TestIdentifierSequences() {
	s.Run("policyholder ids are sequential from 1", func() {
		store := NewInMemory()
		for want := 1; want <= 5; want++ {
			p, err := store.CreatePolicyholder(s.ctx, models.NewPolicyholder{Name: "p"})
			s.Require().NoError(err)
			s.Equal(id.PolicyholderID(want), p.ID)
		}
	})

	s.Run("claim ids are independent of policyholder ids", func() {
		p1 := s.register("Asha")
		p2 := s.register("Ben")
		s.Equal(id.PolicyholderID(1), p1.ID)
		s.Equal(id.PolicyholderID(2), p2.ID)

		c1 := s.submit(p2.ID, 10)
		c2 := s.submit(p1.ID, 20)
		s.Equal(id.ClaimID(1), c1.ID)
		s.Equal(id.ClaimID(2), c2.ID)
	})
}

// TestClaimsForUnknownPolicyholders verifies orphaned claims are stored as-is.
func (s *InMemoryStoreSuite) TestClaimsForUnknownPolicyholders() {
	c := s.submit(id.PolicyholderID(99), 500)
	s.Equal(id.PolicyholderID(99), c.PolicyholderID)

	claims, err := s.store.ListClaims(s.ctx)
	s.Require().NoError(err)
	s.Len(claims, 1)
}

// TestLookups verifies policyholder retrieval and insertion-ordered listing.
func (s *InMemoryStoreSuite) TestLookups() {
	s.Run("finds registered policyholder", func() {
		p := s.register("Chidi")
		found, err := s.store.FindPolicyholder(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal(p, found)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindPolicyholder(s.ctx, id.PolicyholderID(1234))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("lists in registration order", func() {
		store := NewInMemory()
		for _, name := range []string{"a", "b", "c"} {
			_, err := store.CreatePolicyholder(s.ctx, models.NewPolicyholder{Name: name})
			s.Require().NoError(err)
		}
		all, err := store.ListPolicyholders(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		s.Equal("a", all[0].Name)
		s.Equal("c", all[2].Name)
	})
}

// TestSnapshot verifies snapshots are isolated copies and revisions advance.
func (s *InMemoryStoreSuite) TestSnapshot() {
	s.Equal(uint64(0), s.store.Revision(s.ctx))

	p := s.register("Dana")
	s.submit(p.ID, 100)

	snap, err := s.store.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(2), snap.Revision)
	s.Len(snap.Policyholders, 1)
	s.Len(snap.Claims, 1)

	snap.Claims[0].Amount = 0
	s.submit(p.ID, 200)

	again, err := s.store.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(3), again.Revision)
	s.Equal(100.0, again.Claims[0].Amount)
	s.Len(snap.Claims, 1)
}

// TestConcurrentWrites verifies ids stay unique under concurrent submission.
func (s *InMemoryStoreSuite) TestConcurrentWrites() {
	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for range writers {
		go func() {
			defer wg.Done()
			_, _ = s.store.CreateClaim(s.ctx, models.NewClaim{PolicyholderID: 1, Amount: 1})
		}()
	}
	wg.Wait()

	claims, err := s.store.ListClaims(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(claims, writers)
	seen := make(map[id.ClaimID]bool, writers)
	for _, c := range claims {
		s.False(seen[c.ID], "duplicate claim id %d", c.ID)
		seen[c.ID] = true
	}
	s.True(seen[id.ClaimID(1)])
	s.True(seen[id.ClaimID(writers)])
}
