package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into coded domain errors.
//
// For validation failures use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
)
