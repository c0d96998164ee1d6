package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// Monitor holds the release monitoring configuration
type Monitor struct {
	Repos     []string
	Recipient string
	Interval  time.Duration
	StateFile string
	Notify    string
}

// Flags returns CLI flags for monitoring configuration
func (c *Monitor) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "repos",
			Usage:       "Repositories to monitor in the form 'owner/repo' (repeatable)",
			Required:    true,
			Destination: &c.Repos,
			Sources:     cli.EnvVars("RELWATCH_REPOS"),
		},
		&cli.StringFlag{
			Name:        "recipient",
			Usage:       "Notification recipient (email address, or Slack channel for --notify slack)",
			Required:    true,
			Destination: &c.Recipient,
			Sources:     cli.EnvVars("RELWATCH_RECIPIENT"),
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Poll interval",
			Value:       time.Hour,
			Destination: &c.Interval,
			Sources:     cli.EnvVars("RELWATCH_INTERVAL"),
		},
		&cli.StringFlag{
			Name:        "state-file",
			Usage:       "Path of the release history state file",
			Value:       "release_history.json",
			Destination: &c.StateFile,
			Sources:     cli.EnvVars("RELWATCH_STATE_FILE"),
		},
		&cli.StringFlag{
			Name:        "notify",
			Usage:       "Notification transport (email, slack)",
			Value:       "email",
			Destination: &c.Notify,
			Sources:     cli.EnvVars("RELWATCH_NOTIFY"),
		},
	}
}
