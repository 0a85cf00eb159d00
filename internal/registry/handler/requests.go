package handler

import (
	"strings"

	"covera/internal/registry/models"
	id "covera/pkg/domain"
	dErrors "covera/pkg/domain-errors"
)

// RegisterPolicyholderRequest is the HTTP request body for POST /policyholders.
type RegisterPolicyholderRequest struct {
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	PolicyType string  `json:"policy_type"`
	SumInsured float64 `json:"sum_insured"`

	parsedPolicyType models.PolicyType
}

// Validate enforces type constraints only. Free text is passed through
// untouched; length and range checks belong to the service's strict mode.
func (r *RegisterPolicyholderRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	pt, err := models.ParsePolicyType(strings.TrimSpace(r.PolicyType))
	if err != nil {
		return err
	}
	r.parsedPolicyType = pt
	return nil
}

func (r *RegisterPolicyholderRequest) ToModel() models.NewPolicyholder {
	return models.NewPolicyholder{
		Name:       r.Name,
		Age:        r.Age,
		PolicyType: r.parsedPolicyType,
		SumInsured: r.SumInsured,
	}
}

// SubmitClaimRequest is the HTTP request body for POST /claims. An omitted
// date means today.
type SubmitClaimRequest struct {
	PolicyholderID int64   `json:"policyholder_id"`
	Amount         float64 `json:"amount"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	Date           string  `json:"date,omitempty"`

	parsedStatus models.ClaimStatus
	parsedDate   models.Date
}

func (r *SubmitClaimRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.PolicyholderID <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "policyholder_id must be a positive integer")
	}

	status, err := models.ParseClaimStatus(strings.TrimSpace(r.Status))
	if err != nil {
		return err
	}
	r.parsedStatus = status

	if date := strings.TrimSpace(r.Date); date != "" {
		parsed, err := models.ParseDate(date)
		if err != nil {
			return err
		}
		r.parsedDate = parsed
	}
	return nil
}

func (r *SubmitClaimRequest) ToModel() models.NewClaim {
	return models.NewClaim{
		PolicyholderID: id.PolicyholderID(r.PolicyholderID),
		Amount:         r.Amount,
		Reason:         r.Reason,
		Status:         r.parsedStatus,
		Date:           r.parsedDate,
	}
}
