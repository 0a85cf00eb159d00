package handler

import (
	"covera/internal/registry/models"
	id "covera/pkg/domain"
)

// PolicyholderCreatedResponse returns the assigned id together with the record.
type PolicyholderCreatedResponse struct {
	ID           id.PolicyholderID   `json:"id"`
	Policyholder models.Policyholder `json:"policyholder"`
}

type ClaimCreatedResponse struct {
	ID    id.ClaimID   `json:"id"`
	Claim models.Claim `json:"claim"`
}

type PolicyholderListResponse struct {
	Policyholders []models.Policyholder `json:"policyholders"`
}

type ClaimListResponse struct {
	Claims []models.Claim `json:"claims"`
}
