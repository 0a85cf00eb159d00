package models

import (
	id "covera/pkg/domain"
	dErrors "covera/pkg/domain-errors"
)

// ClaimStatus is fixed when the claim is submitted; nothing transitions it.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "Pending"
	ClaimStatusApproved ClaimStatus = "Approved"
	ClaimStatusRejected ClaimStatus = "Rejected"
)

// ParseClaimStatus constructs a ClaimStatus from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseClaimStatus(s string) (ClaimStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "status cannot be empty")
	}
	st := ClaimStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "status must be one of Pending, Approved, Rejected")
	}
	return st, nil
}

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

// Claim is a request for payout against a policy.
//
// PolicyholderID is not checked against registered policyholders, so a claim
// may reference an id that resolves to nothing.
type Claim struct {
	ID             id.ClaimID        `json:"claim_id"`
	PolicyholderID id.PolicyholderID `json:"policyholder_id"`
	Amount         float64           `json:"amount"`
	Reason         string            `json:"reason"`
	Status         ClaimStatus       `json:"status"`
	Date           Date              `json:"date"`
}

// NewClaim holds the submission fields before an id is assigned.
type NewClaim struct {
	PolicyholderID id.PolicyholderID
	Amount         float64
	Reason         string
	Status         ClaimStatus
	Date           Date
}
