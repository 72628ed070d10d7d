package infra

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Storage is the object-storage collaborator used for PDF attachments and
// generated reports. Paths are forward-slash keys, not host paths.
type Storage interface {
	Upload(path string, data []byte) error
	Download(path string) ([]byte, error)
	Remove(path string) error
	PublicURL(path string) string
}

// DiskStorage keeps objects on the local filesystem under a base directory
// and serves them through the /files route.
type DiskStorage struct {
	baseDir string
	baseURL string
}

func NewDiskStorage(baseDir, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &DiskStorage{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStorage) Upload(path string, data []byte) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage: create dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("storage: write object: %w", err)
	}
	return nil
}

func (s *DiskStorage) Download(path string) ([]byte, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("storage: read object: %w", err)
	}
	return data, nil
}

func (s *DiskStorage) Remove(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove object: %w", err)
	}
	return nil
}

func (s *DiskStorage) PublicURL(path string) string {
	// Object keys carry original file names; spaces and the like must be
	// escaped per segment, keeping the slashes.
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/files/" + strings.Join(segs, "/")
}

// resolve maps an object key to a host path, rejecting traversal outside the
// base directory.
func (s *DiskStorage) resolve(path string) (string, error) {
	full := filepath.Join(s.baseDir, filepath.FromSlash(path))
	if !strings.HasPrefix(full, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: invalid object path %q", path)
	}
	return full, nil
}
