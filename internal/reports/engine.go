// Package reports derives read-only views from a store snapshot: per-policyholder
// claim history, risk flags, and grouped aggregates.
//
// Every function here is a pure linear scan over the snapshot it is given and
// never mutates it. Ordering always follows store insertion order.
package reports

import (
	"covera/internal/registry/models"
	"covera/internal/registry/store"
	id "covera/pkg/domain"
)

// RiskRule parameterizes the high-risk heuristic.
//
// A policyholder is high-risk when more than RecentClaimsThreshold of its
// claims are dated within the last WindowDays days (boundary inclusive), or
// when the sum of all its claim amounts, regardless of date, exceeds
// AmountRatio times its sum insured. The count is windowed and the amount is
// not; keep it that way until product says otherwise.
type RiskRule struct {
	WindowDays            int
	RecentClaimsThreshold int
	AmountRatio           float64
}

// DefaultRiskRule flags more than 3 claims in 365 days or lifetime claims
// above 80% of the sum insured.
var DefaultRiskRule = RiskRule{
	WindowDays:            365,
	RecentClaimsThreshold: 3,
	AmountRatio:           0.8,
}

// ClaimsFor returns the claims filed against pid in submission order.
func ClaimsFor(snap store.Snapshot, pid id.PolicyholderID) []models.Claim {
	out := []models.Claim{}
	for _, c := range snap.Claims {
		if c.PolicyholderID == pid {
			out = append(out, c)
		}
	}
	return out
}

// ClaimFrequency counts the claims filed against pid.
func ClaimFrequency(snap store.Snapshot, pid id.PolicyholderID) int {
	return len(ClaimsFor(snap, pid))
}

// ClaimAmountSum totals the claims filed against pid; 0 when there are none.
func ClaimAmountSum(snap store.Snapshot, pid id.PolicyholderID) float64 {
	return sumAmounts(ClaimsFor(snap, pid))
}

// HighRiskPolicyholders returns flagged policyholders in registration order.
// today anchors the recent-claims window.
func HighRiskPolicyholders(snap store.Snapshot, today models.Date, rule RiskRule) []models.Policyholder {
	cutoff := today.AddDays(-rule.WindowDays)
	out := []models.Policyholder{}
	for _, p := range snap.Policyholders {
		claims := ClaimsFor(snap, p.ID)
		recent := 0
		for _, c := range claims {
			if !c.Date.Before(cutoff) {
				recent++
			}
		}
		if recent > rule.RecentClaimsThreshold || sumAmounts(claims) > rule.AmountRatio*p.SumInsured {
			out = append(out, p)
		}
	}
	return out
}

// ClaimsByPolicyType counts claims per policy type of the owning policyholder.
// Claims whose policyholder cannot be resolved are skipped, and types with no
// claims are absent.
func ClaimsByPolicyType(snap store.Snapshot) *Grouping[models.PolicyType, int] {
	types := policyTypeIndex(snap)
	out := newGrouping[models.PolicyType, int]()
	for _, c := range snap.Claims {
		pt, ok := types[c.PolicyholderID]
		if !ok {
			continue
		}
		out.update(pt, func(n int) int { return n + 1 })
	}
	return out
}

// MonthlyClaims counts claims per YYYY-MM month of the claim date. Every claim
// counts, resolvable policyholder or not. Keys are in first-seen order, not
// chronological order.
func MonthlyClaims(snap store.Snapshot) *Grouping[string, int] {
	out := newGrouping[string, int]()
	for _, c := range snap.Claims {
		out.update(c.Date.MonthKey(), func(n int) int { return n + 1 })
	}
	return out
}

// AverageClaimByType averages claim amounts per policy type of the owning
// policyholder. Unresolvable claims are skipped. Get on a type with no claims
// returns 0.
func AverageClaimByType(snap store.Snapshot) *Grouping[models.PolicyType, float64] {
	types := policyTypeIndex(snap)
	totals := newGrouping[models.PolicyType, []float64]()
	for _, c := range snap.Claims {
		pt, ok := types[c.PolicyholderID]
		if !ok {
			continue
		}
		amount := c.Amount
		totals.update(pt, func(v []float64) []float64 { return append(v, amount) })
	}

	out := newGrouping[models.PolicyType, float64]()
	for _, pt := range totals.keys {
		amounts := totals.values[pt]
		out.update(pt, func(float64) float64 {
			if len(amounts) == 0 {
				return 0
			}
			var sum float64
			for _, a := range amounts {
				sum += a
			}
			return sum / float64(len(amounts))
		})
	}
	return out
}

// HighestClaim returns the claim with the largest amount. Ties go to the
// earliest submitted. ok is false when there are no claims.
func HighestClaim(snap store.Snapshot) (models.Claim, bool) {
	if len(snap.Claims) == 0 {
		return models.Claim{}, false
	}
	best := snap.Claims[0]
	for _, c := range snap.Claims[1:] {
		if c.Amount > best.Amount {
			best = c
		}
	}
	return best, true
}

// PendingClaims returns Pending claims in submission order.
func PendingClaims(snap store.Snapshot) []models.Claim {
	out := []models.Claim{}
	for _, c := range snap.Claims {
		if c.Status == models.ClaimStatusPending {
			out = append(out, c)
		}
	}
	return out
}

func policyTypeIndex(snap store.Snapshot) map[id.PolicyholderID]models.PolicyType {
	types := make(map[id.PolicyholderID]models.PolicyType, len(snap.Policyholders))
	for _, p := range snap.Policyholders {
		types[p.ID] = p.PolicyType
	}
	return types
}

func sumAmounts(claims []models.Claim) float64 {
	var total float64
	for _, c := range claims {
		total += c.Amount
	}
	return total
}
