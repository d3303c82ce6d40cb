// Package storage is the object-store capability behind file uploads: it
// accepts raw bytes and returns a durable retrieval URL. Documents and file
// records keep the URL verbatim.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"freelancedesk-backend/utils"
)

type Store struct {
	dir     string
	baseURL string
}

var (
	defaultStore *Store
	once         sync.Once
)

// Default returns the process-wide store configured from the environment.
func Default() *Store {
	once.Do(func() {
		dir := os.Getenv("UPLOAD_DIR")
		if dir == "" {
			dir = "uploads"
		}
		baseURL := os.Getenv("UPLOAD_BASE_URL")
		if baseURL == "" {
			baseURL = "/uploads"
		}
		defaultStore = New(dir, baseURL)
	})
	return defaultStore
}

func New(dir, baseURL string) *Store {
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir returns the directory served statically for retrieval.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the stream under a random name, keeping the original
// extension, and returns the retrieval URL.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := utils.GenerateRandomString(16) + strings.ToLower(filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return s.baseURL + "/" + name, nil
}
