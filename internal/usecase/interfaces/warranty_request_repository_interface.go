package interfaces

import (
	"context"
	"portal_posvenda/internal/domain/entities"
)

// IWarrantyRequestRepository stores request snapshots written behind the flow engine.
//
// Save is an upsert of the whole aggregate, history included. List is only
// used to rebuild the engine state at startup.

type IWarrantyRequestRepository interface {
	Save(ctx context.Context, r entities.WarrantyRequestFlow) error
	List(ctx context.Context) ([]entities.WarrantyRequestFlow, error)
}
