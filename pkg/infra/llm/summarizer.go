package llm

import (
	"bytes"
	"context"
	_ "embed"
	"text/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/relwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

//go:embed prompts/release_summary_system.md
var systemPrompt string

//go:embed prompts/release_summary_user.md
var userPromptTemplate string

type summarizer struct {
	llmClient    gollem.LLMClient
	userTemplate *template.Template
}

// NewSummarizer creates a Summarizer backed by a gollem LLM client.
func NewSummarizer(llmClient gollem.LLMClient) (interfaces.Summarizer, error) {
	tmpl, err := template.New("user").Parse(userPromptTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse user prompt template")
	}

	return &summarizer{
		llmClient:    llmClient,
		userTemplate: tmpl,
	}, nil
}

// Summarize analyzes the release notes of one release and returns an HTML
// summary for embedding in a notification body.
func (s *summarizer) Summarize(ctx context.Context, owner, repo string, rel model.Release) (string, error) {
	logger := ctxlog.From(ctx)

	body := rel.Body
	if body == "" {
		body = "No release notes provided."
	}

	var buf bytes.Buffer
	if err := s.userTemplate.Execute(&buf, map[string]string{
		"Owner":       owner,
		"Repo":        repo,
		"Name":        rel.DisplayName(),
		"Tag":         rel.TagName,
		"PublishedAt": rel.PublishedAt,
		"Body":        body,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to execute user prompt template")
	}

	logger.Debug("Calling LLM for release summary",
		"owner", owner,
		"repo", repo,
		"prompt_length", buf.Len(),
	)

	session, err := s.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate release summary")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("no response from LLM")
	}

	return resp.Texts[0], nil
}
