package config

import "github.com/urfave/cli/v3"

// SMTP holds email delivery configuration
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Flags returns CLI flags for SMTP configuration
func (c *SMTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server host",
			Destination: &c.Host,
			Sources:     cli.EnvVars("RELWATCH_SMTP_HOST"),
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP server port",
			Value:       587,
			Destination: &c.Port,
			Sources:     cli.EnvVars("RELWATCH_SMTP_PORT"),
		},
		&cli.StringFlag{
			Name:        "smtp-username",
			Usage:       "SMTP username (optional)",
			Destination: &c.Username,
			Sources:     cli.EnvVars("RELWATCH_SMTP_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "smtp-password",
			Usage:       "SMTP password (optional)",
			Destination: &c.Password,
			Sources:     cli.EnvVars("RELWATCH_SMTP_PASSWORD"),
		},
		&cli.StringFlag{
			Name:        "smtp-from",
			Usage:       "Sender address for notification emails",
			Destination: &c.From,
			Sources:     cli.EnvVars("RELWATCH_SMTP_FROM"),
		},
	}
}
