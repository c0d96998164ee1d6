package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// Client persists the TrackingStore as a single indented JSON file, safe to
// hand-edit between runs.
type Client struct {
	path string
}

// New creates a file-backed state store at path.
func New(path string) *Client {
	return &Client{path: path}
}

var _ interfaces.StateStore = (*Client)(nil)

// Load reads the state file. A missing file yields an empty store; an
// unreadable or malformed file is logged and also yields an empty store.
// Load never returns an error for state-file damage: losing dedup history
// must not stop the monitor.
func (c *Client) Load(ctx context.Context) (*model.TrackingStore, error) {
	logger := ctxlog.From(ctx)

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("State file not found, starting with empty history", "path", c.path)
		} else {
			logger.Error("Failed to read state file, starting with empty history",
				"path", c.path,
				"error", err,
			)
		}
		return model.NewTrackingStore(), nil
	}

	var store model.TrackingStore
	if err := json.Unmarshal(data, &store); err != nil {
		logger.Error("State file is malformed, starting with empty history",
			"path", c.path,
			"error", err,
		)
		return model.NewTrackingStore(), nil
	}

	logger.Info("Loaded tracking state",
		"path", c.path,
		"repositories", len(store.Repositories),
	)
	for _, rs := range store.Repositories {
		logger.Debug("Tracked repository",
			"owner", rs.Owner,
			"repo", rs.Repo,
			"known_releases", len(rs.Releases),
		)
	}

	return &store, nil
}

// Save writes the full store via write-to-temp-then-rename so a crash mid
// write cannot corrupt the previously saved version. Missing parent
// directories are created.
func (c *Client) Save(ctx context.Context, store *model.TrackingStore) error {
	logger := ctxlog.From(ctx)

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create state directory", goerr.V("dir", dir))
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode tracking state")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary state file", goerr.V("dir", dir))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return goerr.Wrap(err, "failed to write temporary state file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temporary state file", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		return goerr.Wrap(err, "failed to replace state file", goerr.V("path", c.path))
	}

	logger.Debug("Saved tracking state",
		"path", c.path,
		"repositories", len(store.Repositories),
	)
	return nil
}
