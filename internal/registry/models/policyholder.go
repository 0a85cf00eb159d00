package models

import (
	id "covera/pkg/domain"
	dErrors "covera/pkg/domain-errors"
)

// PolicyType is the product a policyholder is insured under.
type PolicyType string

const (
	PolicyTypeHealth  PolicyType = "Health"
	PolicyTypeVehicle PolicyType = "Vehicle"
	PolicyTypeLife    PolicyType = "Life"
)

// PolicyTypes lists the supported policy types in display order.
var PolicyTypes = []PolicyType{PolicyTypeHealth, PolicyTypeVehicle, PolicyTypeLife}

// ParsePolicyType constructs a PolicyType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParsePolicyType(s string) (PolicyType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "policy_type cannot be empty")
	}
	p := PolicyType(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "policy_type must be one of Health, Vehicle, Life")
	}
	return p, nil
}

func (p PolicyType) IsValid() bool {
	switch p {
	case PolicyTypeHealth, PolicyTypeVehicle, PolicyTypeLife:
		return true
	}
	return false
}

// Policyholder is an insured party. Records are immutable once registered.
//
// Invariants:
//   - ID is assigned by the store, sequential from 1
//   - PolicyType is one of PolicyTypes
type Policyholder struct {
	ID         id.PolicyholderID `json:"id"`
	Name       string            `json:"name"`
	Age        int               `json:"age"`
	PolicyType PolicyType        `json:"policy_type"`
	SumInsured float64           `json:"sum_insured"`
}

// NewPolicyholder holds the registration fields before an id is assigned.
type NewPolicyholder struct {
	Name       string
	Age        int
	PolicyType PolicyType
	SumInsured float64
}
