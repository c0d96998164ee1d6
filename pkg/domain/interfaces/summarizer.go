package interfaces

import (
	"context"

	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// Summarizer turns raw release notes into a human-readable summary. The
// output is HTML suitable for embedding in a notification body; callers must
// not assume it is free of stray markdown fences.
type Summarizer interface {
	Summarize(ctx context.Context, owner, repo string, rel model.Release) (string, error)
}
