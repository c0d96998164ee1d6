package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// DetectNewReleases walks the fetched list in source order and records every
// release whose ID the tracker has not seen into the tracker entry idx.
// The known set is mutated before returning, so a second call with the same
// payload in the same cycle reports nothing new.
//
// Releases keep source order in the result; the source order is API response
// order, which callers must not assume is chronological.
func DetectNewReleases(ctx context.Context, tracker *Tracker, idx int, owner, repo string, fetched []model.Release) []model.NewRelease {
	logger := ctxlog.From(ctx)

	known := tracker.KnownIDs(idx)
	logger.Debug("Detecting new releases",
		"owner", owner,
		"repo", repo,
		"known_count", len(known),
		"fetched_count", len(fetched),
	)

	var discovered []model.NewRelease
	for _, rel := range fetched {
		if _, ok := known[rel.ID]; ok {
			logger.Debug("Skipping known release",
				"owner", owner,
				"repo", repo,
				"release", rel.DisplayName(),
				"id", rel.ID,
			)
			continue
		}

		// Normalize the display name once, at discovery time, so the
		// stored copy and the notification agree.
		rel.Name = rel.DisplayName()

		logger.Info("Found new release",
			"owner", owner,
			"repo", repo,
			"release", rel.Name,
			"tag", rel.TagName,
			"id", rel.ID,
		)

		tracker.AppendRelease(idx, rel)
		known[rel.ID] = struct{}{}
		discovered = append(discovered, model.NewRelease{
			Owner:   owner,
			Repo:    repo,
			Release: rel,
		})
	}

	return discovered
}
