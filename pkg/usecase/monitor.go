package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
	"github.com/m-mizutani/relwatch/pkg/metrics"
)

// Monitor drives the fetch -> diff -> enrich -> notify pipeline over a fixed
// set of repositories. It exclusively owns the TrackingStore for the process
// lifetime; all mutation goes through its Tracker from a single goroutine.
type Monitor struct {
	source     interfaces.ReleaseSource
	summarizer interfaces.Summarizer
	notifier   interfaces.Notifier
	stateStore interfaces.StateStore

	repos     []model.RepoSpec
	recipient string
	interval  time.Duration
	now       func() time.Time

	tracker *Tracker
}

// MonitorOption is a functional option for Monitor configuration
type MonitorOption func(*Monitor)

// WithInterval sets the inter-cycle sleep interval.
func WithInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		m.interval = d
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) {
		m.now = now
	}
}

// NewMonitor creates a Monitor for the given repositories and recipient.
// At least one repository is required.
func NewMonitor(
	source interfaces.ReleaseSource,
	summarizer interfaces.Summarizer,
	notifier interfaces.Notifier,
	stateStore interfaces.StateStore,
	repos []model.RepoSpec,
	recipient string,
	opts ...MonitorOption,
) (*Monitor, error) {
	if len(repos) == 0 {
		return nil, goerr.New("no valid repositories to monitor")
	}

	m := &Monitor{
		source:     source,
		summarizer: summarizer,
		notifier:   notifier,
		stateStore: stateStore,
		repos:      repos,
		recipient:  recipient,
		interval:   time.Hour,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Initialize loads the persisted state and runs one full fetch+diff cycle
// with notifications suppressed: releases that already exist before
// monitoring begins are recorded as known so they never trigger a
// notification. State is persisted unconditionally afterwards.
func (m *Monitor) Initialize(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	store, err := m.stateStore.Load(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load tracking state")
	}
	m.tracker = NewTracker(store)

	logger.Info("Initializing release monitor",
		"repositories", len(m.repos),
		"tracked", len(store.Repositories),
	)

	discovered := m.runCycle(ctx, false)
	if len(discovered) > 0 {
		logger.Info("Recorded existing releases during initialization; these will not trigger notifications",
			"count", len(discovered),
		)
	} else {
		logger.Info("No existing releases found during initialization")
	}

	if err := m.stateStore.Save(ctx, m.tracker.Store()); err != nil {
		return goerr.Wrap(err, "failed to persist initial tracking state")
	}

	logger.Info("Initialization complete; only new releases will trigger notifications")
	return nil
}

// PollOnce runs a single poll cycle: every configured repository is fetched
// and diffed, and each new release is enriched and notified. State is
// persisted iff at least one new release was discovered. Per-repository and
// per-release failures are logged and never abort the cycle.
func (m *Monitor) PollOnce(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	discovered := m.runCycle(ctx, true)

	if len(discovered) == 0 {
		logger.Info("No new releases found in any repository")
		return nil
	}

	if err := m.stateStore.Save(ctx, m.tracker.Store()); err != nil {
		metrics.PersistFailures.Inc()
		return goerr.Wrap(err, "failed to persist tracking state")
	}

	return nil
}

// Run executes Initialize once and then poll cycles on the configured
// interval until the context is cancelled. Cancellation during the interval
// wait or an in-flight call exits cleanly; persistence always completes
// before the wait begins, so no state repair is needed on shutdown.
func (m *Monitor) Run(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	logger.Info("Starting release monitoring",
		"repositories", repoNames(m.repos),
		"interval", m.interval.String(),
		"recipient", m.recipient,
	)

	if err := m.Initialize(ctx); err != nil {
		return err
	}

	// Polling comes before the interval wait: a release published right
	// after the cold-start fetch is reported in the first cycle, not one
	// interval later.
	for {
		if ctx.Err() != nil {
			logger.Info("Monitoring stopped", "reason", ctx.Err())
			return nil
		}

		logger.Info("Checking for new releases")
		if err := m.PollOnce(ctx); err != nil {
			// Persistence trouble is logged and retried next cycle; the
			// known set is still intact in memory.
			logger.Error("Poll cycle failed to persist state", "error", err)
		}

		timer := time.NewTimer(m.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("Monitoring stopped", "reason", ctx.Err())
			return nil
		case <-timer.C:
		}
	}
}

// runCycle visits every configured repository sequentially. With notify set,
// each newly discovered release is pushed through the enrich/notify
// pipeline. Returns all releases discovered in this cycle.
func (m *Monitor) runCycle(ctx context.Context, notify bool) []model.NewRelease {
	logger := ctxlog.From(ctx)

	var discovered []model.NewRelease
	for _, spec := range m.repos {
		if ctx.Err() != nil {
			logger.Info("Cycle interrupted", "reason", ctx.Err())
			break
		}

		newReleases := m.checkRepository(ctx, spec)
		discovered = append(discovered, newReleases...)

		if !notify {
			continue
		}
		for _, nr := range newReleases {
			m.processNewRelease(ctx, nr)
		}
	}

	metrics.PollCycles.Inc()
	return discovered
}

// checkRepository fetches and diffs one repository. A fetch failure is
// treated as "no releases this cycle": logged, known set untouched, cycle
// continues with the next repository.
func (m *Monitor) checkRepository(ctx context.Context, spec model.RepoSpec) []model.NewRelease {
	logger := ctxlog.From(ctx)

	fetched, err := m.source.FetchReleases(ctx, spec.Owner, spec.Repo)
	if err != nil {
		metrics.FetchFailures.WithLabelValues(spec.Owner, spec.Repo).Inc()
		logger.Error("Failed to fetch releases",
			"owner", spec.Owner,
			"repo", spec.Repo,
			"error", err,
		)
		return nil
	}

	idx := m.tracker.EnsureTracked(spec.Owner, spec.Repo)
	m.tracker.RecordCheck(idx, m.now().Format(time.RFC3339))

	newReleases := DetectNewReleases(ctx, m.tracker, idx, spec.Owner, spec.Repo, fetched)
	for _, nr := range newReleases {
		metrics.NewReleases.WithLabelValues(nr.Owner, nr.Repo).Inc()
	}
	return newReleases
}

// processNewRelease runs the enrich -> notify pipeline for one release.
// Failures are logged and isolated: an enrichment error falls back to the
// raw release notes, and a delivery error never blocks later releases.
func (m *Monitor) processNewRelease(ctx context.Context, nr model.NewRelease) {
	logger := ctxlog.From(ctx)

	logger.Info("Processing new release",
		"owner", nr.Owner,
		"repo", nr.Repo,
		"release", nr.Release.DisplayName(),
		"tag", nr.Release.TagName,
		"url", nr.Release.HTMLURL,
	)

	summary, err := m.summarizer.Summarize(ctx, nr.Owner, nr.Repo, nr.Release)
	if err != nil {
		metrics.SummarizeFailures.Inc()
		logger.Error("Failed to summarize release, falling back to raw release notes",
			"owner", nr.Owner,
			"repo", nr.Repo,
			"release", nr.Release.DisplayName(),
			"error", err,
		)
		summary = nr.Release.Body
	}
	summary = stripCodeFences(summary)

	msg := buildNotification(nr, summary)

	if err := m.notifier.Deliver(ctx, m.recipient, msg); err != nil {
		metrics.NotifyFailures.Inc()
		logger.Error("Failed to deliver notification",
			"owner", nr.Owner,
			"repo", nr.Repo,
			"release", nr.Release.DisplayName(),
			"error", err,
		)
		return
	}

	metrics.NotificationsSent.Inc()
	logger.Info("Notification delivered",
		"recipient", m.recipient,
		"subject", msg.Subject,
	)
}

func repoNames(repos []model.RepoSpec) []string {
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.String())
	}
	return names
}
