package interfaces

import (
	"context"

	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// StateStore persists the tracking state between runs.
//
// Load never fails on a missing or corrupt resource: both yield an empty
// store, so state-file damage can degrade dedup but can never stop the
// monitor from starting.
type StateStore interface {
	Load(ctx context.Context) (*model.TrackingStore, error)
	Save(ctx context.Context, store *model.TrackingStore) error
}
