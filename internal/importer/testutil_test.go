// internal/importer/testutil_test.go
package importer

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/internal/host/mocks"
	"go.uber.org/mock/gomock"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder collects published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

// handle is a plain asset handle returned by mocked LoadAsset calls.
type handle struct {
	name string
	typ  host.AssetType
	path string
}

func (h *handle) Name() string         { return h.name }
func (h *handle) Type() host.AssetType { return h.typ }
func (h *handle) Path() string         { return h.path }

// newProject creates a project directory with an Assets folder.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Assets"), 0755))
	return root
}

// setupMockImporter returns an importer over a mocked host and a fresh
// project directory.
func setupMockImporter(t *testing.T) (*Importer, *mocks.MockHost, *recorder, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := mocks.NewMockHost(ctrl)
	rec := &recorder{}
	root := newProject(t)
	imp := New(h, Config{ProjectRoot: root}, rec, testLogger())
	return imp, h, rec, root
}

// mkdirOnCreate makes CreateFolder calls create the folder on disk.
func mkdirOnCreate(root string) func(context.Context, string, string) error {
	return func(_ context.Context, parent, name string) error {
		return os.MkdirAll(filepath.Join(root, filepath.FromSlash(parent), name), 0755)
	}
}

// writeFiles writes name -> content pairs below dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

// modelFolders creates the managed folders for model under root.
func modelFolders(t *testing.T, root, model string) {
	t.Helper()
	for _, sub := range []string{"Materials", "Textures"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "Assets", "Models", model, sub), 0755))
	}
}
