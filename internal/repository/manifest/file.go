package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/johncarney/manifest-sync/internal/config"
	domain "github.com/johncarney/manifest-sync/internal/domain/manifest"
)

// Repository defines persistence operations for the module manifest.
type Repository interface {
	Load(ctx context.Context) (*domain.Manifest, error)
	Save(ctx context.Context, m *domain.Manifest) error
}

// FileRepository persists the manifest to a JSON file on disk.
// The document is kept as raw ordered JSON so an update run rewrites
// only the touched fields.
type FileRepository struct {
	// path is the filesystem location of the manifest file.
	path string
	// mu protects concurrent access to the manifest file.
	mu sync.Mutex
}

// ErrNotFound is returned when the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the cleaned location of the manifest file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the manifest from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.Manifest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}

		return nil, fmt.Errorf("read manifest file: %w", err)
	}

	m, err := domain.FromBytes(contents)
	if err != nil {
		return nil, fmt.Errorf("decode manifest file %s: %w", r.path, err)
	}

	return m, nil
}

// Save overwrites the manifest file with the rendered document.
func (r *FileRepository) Save(_ context.Context, m *domain.Manifest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.WriteFile(r.path, m.Render(), config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write manifest file: %w", err)
	}

	return nil
}
