package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// LLM holds summarizer LLM configuration
type LLM struct {
	Provider string

	OpenAIAPIKey string
	OpenAIModel  string

	GeminiProjectID string
	GeminiLocation  string
	GeminiModel     string
}

// Flags returns CLI flags for LLM configuration
func (c *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "LLM provider for release summaries (openai, gemini)",
			Value:       "openai",
			Destination: &c.Provider,
			Sources:     cli.EnvVars("RELWATCH_LLM_PROVIDER"),
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Destination: &c.OpenAIAPIKey,
			Sources:     cli.EnvVars("RELWATCH_OPENAI_API_KEY", "OPENAI_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model to use",
			Value:       "gpt-4.1-mini",
			Destination: &c.OpenAIModel,
			Sources:     cli.EnvVars("RELWATCH_OPENAI_MODEL"),
		},
		&cli.StringFlag{
			Name:        "gemini-project-id",
			Usage:       "Google Cloud Project ID for Gemini",
			Destination: &c.GeminiProjectID,
			Sources:     cli.EnvVars("RELWATCH_GEMINI_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Vertex AI location/region",
			Value:       "us-central1",
			Destination: &c.GeminiLocation,
			Sources:     cli.EnvVars("RELWATCH_GEMINI_LOCATION"),
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model to use",
			Value:       "gemini-2.5-flash",
			Destination: &c.GeminiModel,
			Sources:     cli.EnvVars("RELWATCH_GEMINI_MODEL"),
		},
	}
}

// Configure builds the gollem client for the selected provider.
func (c *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch c.Provider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return nil, goerr.New("openai-api-key is required for the openai provider")
		}
		client, err := openai.New(ctx, c.OpenAIAPIKey, openai.WithModel(c.OpenAIModel))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}
		return client, nil

	case "gemini":
		if c.GeminiProjectID == "" {
			return nil, goerr.New("gemini-project-id is required for the gemini provider")
		}
		client, err := gemini.New(ctx, c.GeminiProjectID, c.GeminiLocation, gemini.WithModel(c.GeminiModel))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil

	default:
		return nil, goerr.New("unknown LLM provider", goerr.V("provider", c.Provider))
	}
}
