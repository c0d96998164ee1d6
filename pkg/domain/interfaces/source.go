package interfaces

import (
	"context"

	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// ReleaseSource fetches the published releases of a repository. The returned
// list is in the order the source reported it, which is not guaranteed to be
// chronological or stable across calls.
type ReleaseSource interface {
	FetchReleases(ctx context.Context, owner, repo string) ([]model.Release, error)
}
