package interfaces

import (
	"context"

	"clinic_pos/internal/domain/entities"
)

// IDraftRepository persists in-progress selection state. Drafts are stored
// and restored verbatim: the core must tolerate previously-serialized
// selections as input without loss.
type IDraftRepository interface {
	Save(ctx context.Context, key string, selections []entities.Selection) error
	Load(ctx context.Context, key string) ([]entities.Selection, error)
}
