package interfaces

import (
	"context"

	"clinic_pos/internal/domain/entities"
)

// IBundleContentsRepository resolves bundle compositions by bundle id. The
// aggregator uses them to validate per-bundle quantity derivation; when a
// composition is missing, aggregation degrades to the raw-sum fallback.
type IBundleContentsRepository interface {
	GetByBundleIDs(ctx context.Context, bundleIDs []string) (map[string]entities.BundleContents, error)
}
