package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relwatch/pkg/domain/model"
	"github.com/m-mizutani/relwatch/pkg/usecase"
)

func TestDetectNewReleases_AllNew(t *testing.T) {
	ctx := context.Background()
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")

	fetched := []model.Release{
		{ID: 101, TagName: "v1.0.0"},
		{ID: 102, TagName: "v1.1.0"},
	}

	discovered := usecase.DetectNewReleases(ctx, tracker, idx, "acme", "widget", fetched)

	gt.Number(t, len(discovered)).Equal(2)
	gt.Number(t, discovered[0].Release.ID).Equal(int64(101))
	gt.Number(t, discovered[1].Release.ID).Equal(int64(102))
	gt.Number(t, len(tracker.KnownIDs(idx))).Equal(2)
}

func TestDetectNewReleases_Idempotent(t *testing.T) {
	ctx := context.Background()
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")

	fetched := []model.Release{
		{ID: 101, TagName: "v1.0.0"},
		{ID: 102, TagName: "v1.1.0"},
	}

	first := usecase.DetectNewReleases(ctx, tracker, idx, "acme", "widget", fetched)
	gt.Number(t, len(first)).Equal(2)

	// Identical payload within the same cycle must report nothing new
	second := usecase.DetectNewReleases(ctx, tracker, idx, "acme", "widget", fetched)
	gt.Number(t, len(second)).Equal(0)
	gt.Number(t, len(tracker.KnownIDs(idx))).Equal(2)
}

func TestDetectNewReleases_PreservesSourceOrder(t *testing.T) {
	ctx := context.Background()
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")
	tracker.AppendRelease(idx, model.Release{ID: 1, TagName: "v0.1.0"})

	// Source order [R5, R1, R3] with R1 already known must yield [R5, R3]
	fetched := []model.Release{
		{ID: 5, TagName: "v0.5.0"},
		{ID: 1, TagName: "v0.1.0"},
		{ID: 3, TagName: "v0.3.0"},
	}

	discovered := usecase.DetectNewReleases(ctx, tracker, idx, "acme", "widget", fetched)

	gt.Number(t, len(discovered)).Equal(2)
	gt.Number(t, discovered[0].Release.ID).Equal(int64(5))
	gt.Number(t, discovered[1].Release.ID).Equal(int64(3))
}

func TestDetectNewReleases_EmptyFetch(t *testing.T) {
	ctx := context.Background()
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")
	tracker.AppendRelease(idx, model.Release{ID: 101})

	discovered := usecase.DetectNewReleases(ctx, tracker, idx, "acme", "widget", nil)

	gt.Number(t, len(discovered)).Equal(0)
	gt.Number(t, len(tracker.KnownIDs(idx))).Equal(1)
}

func TestDetectNewReleases_NameFallsBackToTag(t *testing.T) {
	ctx := context.Background()
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")

	fetched := []model.Release{
		{ID: 7, TagName: "v2.0.0", Name: ""},
	}

	discovered := usecase.DetectNewReleases(ctx, tracker, idx, "acme", "widget", fetched)

	gt.Number(t, len(discovered)).Equal(1)
	gt.String(t, discovered[0].Release.Name).Equal("v2.0.0")
	gt.String(t, tracker.Store().Repositories[idx].Releases[0].Name).Equal("v2.0.0")
}

func TestDetectNewReleases_DuplicateIDsInPayload(t *testing.T) {
	ctx := context.Background()
	tracker := usecase.NewTracker(model.NewTrackingStore())
	idx := tracker.EnsureTracked("acme", "widget")

	fetched := []model.Release{
		{ID: 9, TagName: "v3.0.0"},
		{ID: 9, TagName: "v3.0.0"},
	}

	discovered := usecase.DetectNewReleases(ctx, tracker, idx, "acme", "widget", fetched)

	gt.Number(t, len(discovered)).Equal(1)
	gt.Number(t, len(tracker.Store().Repositories[idx].Releases)).Equal(1)
}
