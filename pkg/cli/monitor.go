package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relwatch/pkg/cli/config"
	controller "github.com/m-mizutani/relwatch/pkg/controller/http"
	"github.com/m-mizutani/relwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
	ghinfra "github.com/m-mizutani/relwatch/pkg/infra/github"
	"github.com/m-mizutani/relwatch/pkg/infra/llm"
	"github.com/m-mizutani/relwatch/pkg/infra/mail"
	"github.com/m-mizutani/relwatch/pkg/infra/slackx"
	"github.com/m-mizutani/relwatch/pkg/infra/state"
	"github.com/m-mizutani/relwatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdMonitor() *cli.Command {
	var (
		monitorCfg config.Monitor
		githubCfg  config.GitHub
		llmCfg     config.LLM
		smtpCfg    config.SMTP
		slackCfg   config.Slack
		serverCfg  config.Server
	)

	flags := monitorCfg.Flags()
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, smtpCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, serverCfg.Flags()...)

	return &cli.Command{
		Name:    "monitor",
		Aliases: []string{"m"},
		Usage:   "Watch repositories for new releases and send notifications",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			repos, invalid := model.ParseRepoSpecs(monitorCfg.Repos)
			for _, s := range invalid {
				logger.Warn("Skipping invalid repository specifier, expected 'owner/repo'", "spec", s)
			}
			if len(repos) == 0 {
				return goerr.New("no valid repositories specified")
			}

			source := ghinfra.NewClient(ghinfra.WithToken(githubCfg.Token))

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			summarizer, err := llm.NewSummarizer(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to create summarizer")
			}

			notifier, err := buildNotifier(&monitorCfg, &smtpCfg, &slackCfg)
			if err != nil {
				return err
			}

			stateStore := state.New(monitorCfg.StateFile)

			monitor, err := usecase.NewMonitor(
				source,
				summarizer,
				notifier,
				stateStore,
				repos,
				monitorCfg.Recipient,
				usecase.WithInterval(monitorCfg.Interval),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var server *controller.Server
			if serverCfg.Addr != "" {
				server = controller.NewServer(ctx, controller.WithAddr(serverCfg.Addr))
				go func() {
					logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						logger.Error("HTTP server error", slog.Any("error", err))
					}
				}()
			}

			runErr := monitor.Run(ctx)

			if server != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error("Failed to shutdown HTTP server gracefully", slog.Any("error", err))
				}
			}

			return runErr
		},
	}
}

func buildNotifier(monitorCfg *config.Monitor, smtpCfg *config.SMTP, slackCfg *config.Slack) (interfaces.Notifier, error) {
	switch monitorCfg.Notify {
	case "email":
		if smtpCfg.Host == "" {
			return nil, goerr.New("smtp-host is required for email notifications")
		}
		if smtpCfg.From == "" {
			return nil, goerr.New("smtp-from is required for email notifications")
		}
		return mail.NewNotifier(mail.Config{
			Host:     smtpCfg.Host,
			Port:     smtpCfg.Port,
			Username: smtpCfg.Username,
			Password: smtpCfg.Password,
			From:     smtpCfg.From,
		})

	case "slack":
		if slackCfg.WebhookURL == "" {
			return nil, goerr.New("slack-webhook-url is required for slack notifications")
		}
		return slackx.NewNotifier(slackCfg.WebhookURL), nil

	default:
		return nil, goerr.New("unknown notification transport", goerr.V("notify", monitorCfg.Notify))
	}
}
