package application

import "linkreport/internal/domain"

// Re-export domain types for use by adapters
type (
	PresetConfig   = domain.PresetConfig
	AggregateEntry = domain.AggregateEntry
	Reference      = domain.Reference
	Link           = domain.Link
)

// ParseReference decomposes a raw link token into its parts.
func ParseReference(raw string) Reference {
	return domain.ParseReference(raw)
}
