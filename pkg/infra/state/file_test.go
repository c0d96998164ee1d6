package state_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relwatch/pkg/domain/model"
	"github.com/m-mizutani/relwatch/pkg/infra/state"
)

func TestClient_Load_MissingFile(t *testing.T) {
	ctx := context.Background()
	client := state.New(filepath.Join(t.TempDir(), "no_such_file.json"))

	store, err := client.Load(ctx)
	gt.NoError(t, err)
	gt.Value(t, store).NotNil()
	gt.Number(t, len(store.Repositories)).Equal(0)
}

func TestClient_Load_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.json")
	gt.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0644))

	client := state.New(path)

	// Corruption is never fatal: it degrades to an empty store
	store, err := client.Load(ctx)
	gt.NoError(t, err)
	gt.Number(t, len(store.Repositories)).Equal(0)
}

func TestClient_SaveAndLoad_Roundtrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.json")
	client := state.New(path)

	store := &model.TrackingStore{
		Repositories: []model.RepositoryState{
			{
				Owner:       "acme",
				Repo:        "widget",
				LatestCheck: "2026-08-26T10:00:00Z",
				Releases: []model.Release{
					{
						ID:          101,
						TagName:     "v1.0.0",
						Name:        "First",
						PublishedAt: "2026-08-25T09:00:00Z",
						HTMLURL:     "https://github.com/acme/widget/releases/tag/v1.0.0",
						Body:        "notes",
					},
				},
			},
		},
	}

	gt.NoError(t, client.Save(ctx, store))

	loaded, err := client.Load(ctx)
	gt.NoError(t, err)
	gt.Number(t, len(loaded.Repositories)).Equal(1)
	gt.Value(t, loaded.Repositories[0]).Equal(store.Repositories[0])
}

func TestClient_Save_CreatesParentDirectories(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "deep", "nested", "history.json")
	client := state.New(path)

	gt.NoError(t, client.Save(ctx, model.NewTrackingStore()))

	_, err := os.Stat(path)
	gt.NoError(t, err)
}

func TestClient_Save_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.json")
	client := state.New(path)

	store := &model.TrackingStore{
		Repositories: []model.RepositoryState{{Owner: "acme", Repo: "widget"}},
	}

	gt.NoError(t, client.Save(ctx, store))
	store.Repositories[0].Releases = append(store.Repositories[0].Releases, model.Release{ID: 1, TagName: "v1"})
	gt.NoError(t, client.Save(ctx, store))

	loaded, err := client.Load(ctx)
	gt.NoError(t, err)
	gt.Number(t, len(loaded.Repositories[0].Releases)).Equal(1)

	// No leftover temp files from the atomic write
	entries, err := os.ReadDir(filepath.Dir(path))
	gt.NoError(t, err)
	for _, e := range entries {
		gt.False(t, strings.HasSuffix(e.Name(), ".tmp"))
	}
}

func TestClient_Save_HumanReadable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.json")
	client := state.New(path)

	store := &model.TrackingStore{
		Repositories: []model.RepositoryState{{Owner: "acme", Repo: "widget"}},
	}
	gt.NoError(t, client.Save(ctx, store))

	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("\n  \"repositories\"")
	gt.String(t, string(data)).Contains("\"owner\": \"acme\"")
}
