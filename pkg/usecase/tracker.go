package usecase

import (
	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// Tracker owns the per-repository entries of a TrackingStore. It is the only
// writer of the store; the orchestration loop calls it from a single
// goroutine, so no locking is needed.
type Tracker struct {
	store *model.TrackingStore
}

// NewTracker wraps an existing store, typically the one returned by
// StateStore.Load.
func NewTracker(store *model.TrackingStore) *Tracker {
	return &Tracker{store: store}
}

// Store returns the underlying store for persistence.
func (t *Tracker) Store() *model.TrackingStore {
	return t.store
}

// EnsureTracked returns the index of the entry for (owner, repo), appending
// a new empty entry if the repository has not been seen before. Idempotent:
// a second call with the same key returns the same index.
func (t *Tracker) EnsureTracked(owner, repo string) int {
	for i, rs := range t.store.Repositories {
		if rs.Owner == owner && rs.Repo == repo {
			return i
		}
	}
	t.store.Repositories = append(t.store.Repositories, model.RepositoryState{
		Owner: owner,
		Repo:  repo,
	})
	return len(t.store.Repositories) - 1
}

// RecordCheck updates the advisory last-check timestamp unconditionally.
func (t *Tracker) RecordCheck(idx int, timestamp string) {
	t.store.Repositories[idx].LatestCheck = timestamp
}

// KnownIDs returns the identifiers of all releases recorded for the entry.
func (t *Tracker) KnownIDs(idx int) map[int64]struct{} {
	releases := t.store.Repositories[idx].Releases
	known := make(map[int64]struct{}, len(releases))
	for _, rel := range releases {
		known[rel.ID] = struct{}{}
	}
	return known
}

// AppendRelease records a release for the entry. The caller guarantees the
// identifier is not already present; this keeps the append push-only.
func (t *Tracker) AppendRelease(idx int, rel model.Release) {
	t.store.Repositories[idx].Releases = append(t.store.Repositories[idx].Releases, rel)
}
