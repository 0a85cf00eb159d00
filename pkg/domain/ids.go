// Package domain holds identifier types shared across modules.
//
// Policyholder and claim identifiers are independent sequences that both start
// at 1. Distinct types keep a claim id from being passed where a policyholder id
// is expected.
package domain

import (
	"strconv"

	dErrors "covera/pkg/domain-errors"
)

// maxIDDigits keeps parsed ids within int64 range.
const maxIDDigits = 18

// PolicyholderID identifies a registered policyholder.
type PolicyholderID int64

// ClaimID identifies a submitted claim.
type ClaimID int64

func (id PolicyholderID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id ClaimID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParsePolicyholderID parses a path or query value into a PolicyholderID.
//
// Errors: returns CodeInvalidInput for anything other than a positive decimal
// integer without sign or whitespace.
func ParsePolicyholderID(s string) (PolicyholderID, error) {
	v, err := parsePositive(s, "policyholder id")
	return PolicyholderID(v), err
}

// ParseClaimID parses a path or query value into a ClaimID.
func ParseClaimID(s string) (ClaimID, error) {
	v, err := parsePositive(s, "claim id")
	return ClaimID(v), err
}

func parsePositive(s, field string) (int64, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" cannot be empty")
	}
	if len(s) > maxIDDigits {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" is too long")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	if v == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" must be positive")
	}
	return v, nil
}
