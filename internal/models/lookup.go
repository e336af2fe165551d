package models

import "wordpage/internal/dictionary"

// Lookup trigger constants
const (
	TriggerSearch = "search"
	TriggerRandom = "random"
)

// Lookup outcome constants
const (
	OutcomeShown          = "shown"
	OutcomeNotFound       = "not_found"
	OutcomeTransportError = "transport_error"
	OutcomeMappingError   = "mapping_error"
	OutcomeStale          = "stale"
)

// OutcomeForKind maps an error kind onto its outcome label.
func OutcomeForKind(kind dictionary.ErrorKind) string {
	switch kind {
	case dictionary.NoError:
		return OutcomeShown
	case dictionary.NotFoundError:
		return OutcomeNotFound
	case dictionary.MappingError:
		return OutcomeMappingError
	default:
		return OutcomeTransportError
	}
}
