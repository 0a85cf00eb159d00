package handler

import "covera/internal/registry/models"

type HighRiskResponse struct {
	Policyholders []models.Policyholder `json:"policyholders"`
}

type HighestClaimResponse struct {
	Claim *models.Claim `json:"claim"`
}

type PendingClaimsResponse struct {
	Claims []models.Claim `json:"claims"`
}
