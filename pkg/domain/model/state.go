package model

// RepositoryState is the persisted tracking state for one repository.
// Releases holds every release seen so far in discovery order; the set of
// their IDs is the dedup source of truth and never shrinks.
type RepositoryState struct {
	Owner       string    `json:"owner"`
	Repo        string    `json:"repo"`
	LatestCheck string    `json:"latest_check,omitempty"`
	Releases    []Release `json:"releases"`
}

// TrackingStore is the whole persisted document: one RepositoryState per
// monitored (owner, repo) pair. The JSON layout is compatible with state
// files produced by earlier versions of the monitor, so a hand-edited or
// pre-existing file keeps working.
type TrackingStore struct {
	Repositories []RepositoryState `json:"repositories"`
}

// NewTrackingStore returns an empty store.
func NewTrackingStore() *TrackingStore {
	return &TrackingStore{}
}
