package github

import (
	"context"
	"net/url"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
	"github.com/m-mizutani/relwatch/pkg/utils/retry"
)

type client struct {
	githubClient *github.Client
	retryCfg     retry.Config
	timeout      time.Duration
}

// Option is a functional option for client configuration
type Option func(*client)

// WithToken authenticates API calls with a personal access token. Without a
// token the client works against public repositories at a reduced rate limit.
func WithToken(token string) Option {
	return func(c *client) {
		if token != "" {
			c.githubClient = c.githubClient.WithAuthToken(token)
		}
	}
}

// WithBaseURL points the client at a different API endpoint, e.g. a GitHub
// Enterprise instance or a test server. The URL must end with a slash.
func WithBaseURL(rawURL string) Option {
	return func(c *client) {
		if u, err := url.Parse(rawURL); err == nil {
			c.githubClient.BaseURL = u
		}
	}
}

// WithRetry overrides the retry/backoff configuration for fetches.
func WithRetry(cfg retry.Config) Option {
	return func(c *client) {
		c.retryCfg = cfg
	}
}

// WithTimeout bounds each fetch attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// NewClient creates a ReleaseSource backed by the GitHub REST API.
func NewClient(opts ...Option) interfaces.ReleaseSource {
	c := &client{
		githubClient: github.NewClient(nil),
		retryCfg:     retry.Default,
		timeout:      30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchReleases lists all releases of owner/repo in API response order.
// Transient failures are retried with backoff; the final error is returned
// to the caller, which treats it as "no releases this cycle".
func (c *client) FetchReleases(ctx context.Context, owner, repo string) ([]model.Release, error) {
	var releases []model.Release

	err := retry.Do(ctx, c.retryCfg, func(ctx context.Context) error {
		fetched, err := c.listReleases(ctx, owner, repo)
		if err != nil {
			return err
		}
		releases = fetched
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch releases",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return releases, nil
}

func (c *client) listReleases(ctx context.Context, owner, repo string) ([]model.Release, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var all []model.Release
	opt := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := c.githubClient.Repositories.ListReleases(ctx, owner, repo, opt)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list releases")
		}

		for _, rel := range page {
			all = append(all, convertRelease(rel))
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return all, nil
}

func convertRelease(rel *github.RepositoryRelease) model.Release {
	var publishedAt string
	if ts := rel.GetPublishedAt(); !ts.IsZero() {
		publishedAt = ts.Format(time.RFC3339)
	}

	return model.Release{
		ID:          rel.GetID(),
		TagName:     rel.GetTagName(),
		Name:        rel.GetName(),
		PublishedAt: publishedAt,
		HTMLURL:     rel.GetHTMLURL(),
		Body:        rel.GetBody(),
	}
}
