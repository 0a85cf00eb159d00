package audit

import "time"

// Action names a recorded mutation.
type Action string

const (
	ActionPolicyholderRegistered Action = "policyholder_registered"
	ActionClaimSubmitted         Action = "claim_submitted"
)

// Event records one mutation of the record store. Keep it transport-agnostic
// so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject"`
	RequestID string    `json:"request_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
