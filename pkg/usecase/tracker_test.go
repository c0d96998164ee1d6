package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relwatch/pkg/domain/model"
	"github.com/m-mizutani/relwatch/pkg/usecase"
)

func TestTracker_EnsureTracked_Idempotent(t *testing.T) {
	tracker := usecase.NewTracker(model.NewTrackingStore())

	idx1 := tracker.EnsureTracked("acme", "widget")
	idx2 := tracker.EnsureTracked("acme", "widget")

	gt.Number(t, idx1).Equal(0)
	gt.Number(t, idx2).Equal(idx1)
	gt.Number(t, len(tracker.Store().Repositories)).Equal(1)
}

func TestTracker_EnsureTracked_SeparateEntries(t *testing.T) {
	tracker := usecase.NewTracker(model.NewTrackingStore())

	idx1 := tracker.EnsureTracked("acme", "widget")
	idx2 := tracker.EnsureTracked("acme", "gadget")
	idx3 := tracker.EnsureTracked("globex", "widget")

	gt.Number(t, idx1).Equal(0)
	gt.Number(t, idx2).Equal(1)
	gt.Number(t, idx3).Equal(2)
	gt.Number(t, len(tracker.Store().Repositories)).Equal(3)
}

func TestTracker_EnsureTracked_ExistingStore(t *testing.T) {
	store := &model.TrackingStore{
		Repositories: []model.RepositoryState{
			{Owner: "acme", Repo: "widget", Releases: []model.Release{{ID: 101}}},
			{Owner: "globex", Repo: "gadget"},
		},
	}
	tracker := usecase.NewTracker(store)

	gt.Number(t, tracker.EnsureTracked("globex", "gadget")).Equal(1)
	gt.Number(t, tracker.EnsureTracked("acme", "widget")).Equal(0)
	gt.Number(t, len(store.Repositories)).Equal(2)
}

func TestTracker_KnownIDs(t *testing.T) {
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")

	gt.Number(t, len(tracker.KnownIDs(idx))).Equal(0)

	tracker.AppendRelease(idx, model.Release{ID: 101, TagName: "v1.0.0"})
	tracker.AppendRelease(idx, model.Release{ID: 102, TagName: "v1.1.0"})

	known := tracker.KnownIDs(idx)
	gt.Number(t, len(known)).Equal(2)
	_, ok := known[101]
	gt.True(t, ok)
	_, ok = known[102]
	gt.True(t, ok)
}

func TestTracker_AppendRelease_KeepsOrder(t *testing.T) {
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")

	tracker.AppendRelease(idx, model.Release{ID: 5})
	tracker.AppendRelease(idx, model.Release{ID: 1})
	tracker.AppendRelease(idx, model.Release{ID: 3})

	releases := tracker.Store().Repositories[idx].Releases
	gt.Number(t, len(releases)).Equal(3)
	gt.Number(t, releases[0].ID).Equal(int64(5))
	gt.Number(t, releases[1].ID).Equal(int64(1))
	gt.Number(t, releases[2].ID).Equal(int64(3))
}

func TestTracker_RecordCheck(t *testing.T) {
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")

	tracker.RecordCheck(idx, "2026-08-26T10:00:00Z")
	gt.String(t, tracker.Store().Repositories[idx].LatestCheck).Equal("2026-08-26T10:00:00Z")

	tracker.RecordCheck(idx, "2026-08-26T11:00:00Z")
	gt.String(t, tracker.Store().Repositories[idx].LatestCheck).Equal("2026-08-26T11:00:00Z")
}
