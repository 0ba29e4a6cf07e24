package interfaces

import (
	"context"

	"catermate/internal/domain/entities"
)

// ICateringCatalog is the read-only view of the platform's CRUD resources
// the engine consumes: menu packages, equipment and events.
//
// GetMenuPackage and GetEvent signal a missing row with a zero value rather
// than an error; an unresolvable package is a legitimate "no package" state
// and only the caller knows whether a missing event is fatal.
// GetEquipmentByIDs silently skips ids that do not resolve.

type ICateringCatalog interface {
	GetMenuPackage(ctx context.Context, id string) (entities.MenuPackage, error)
	GetEquipmentByIDs(ctx context.Context, ids []string) ([]entities.EquipmentItem, error)
	GetEvent(ctx context.Context, id string) (entities.Event, error)
}
