package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Poll-cycle level counters, exposed on the operational HTTP server.
var (
	PollCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relwatch_poll_cycles_total",
		Help: "Number of completed poll cycles, including the cold-start cycle",
	})

	NewReleases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relwatch_new_releases_total",
		Help: "Number of newly discovered releases per repository",
	}, []string{"owner", "repo"})

	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relwatch_fetch_failures_total",
		Help: "Number of failed release fetches per repository",
	}, []string{"owner", "repo"})

	SummarizeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relwatch_summarize_failures_total",
		Help: "Number of failed summarization calls",
	})

	NotifyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relwatch_notify_failures_total",
		Help: "Number of failed notification deliveries",
	})

	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relwatch_notifications_sent_total",
		Help: "Number of successfully delivered notifications",
	})

	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relwatch_persist_failures_total",
		Help: "Number of failed state persistence attempts",
	})
)
