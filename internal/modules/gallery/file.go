package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type fileDocument struct {
	Images []Image `json:"images"`
}

// FileStore keeps the whole gallery in one JSON file. Every Append reads
// the file, adds the record in insertion order and rewrites the file.
// Appends within one process are serialized by a mutex; concurrent writers
// from separate processes can still lose updates (last writer wins). That
// gap is accepted rather than hidden — a file lock would be the explicit
// upgrade if it ever matters.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	err := os.MkdirAll(filepath.Dir(path), 0770)
	if err != nil {
		return nil, err
	}
	s := &FileStore{path: path}
	// Fail at startup if the file exists but cannot be parsed.
	_, err = s.read()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Append(ctx context.Context, img Image) error {
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	doc.Images = append(doc.Images, img)
	err = s.write(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// List reverses insertion order so callers see newest-first, matching the
// MySQL backend's created_at DESC ordering.
func (s *FileStore) List(ctx context.Context) ([]Image, error) {
	s.mu.Lock()
	doc, err := s.read()
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	ret := make([]Image, 0, len(doc.Images))
	for i := len(doc.Images) - 1; i >= 0; i-- {
		img := doc.Images[i]
		img.CreatedAt = time.Time{}
		ret = append(ret, img)
	}
	return ret, nil
}

func (s *FileStore) read() (fileDocument, error) {
	var doc fileDocument
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, err
	}
	if len(data) == 0 {
		return doc, nil
	}
	err = jsoniter.Unmarshal(data, &doc)
	if err != nil {
		return fileDocument{}, err
	}
	return doc, nil
}

func (s *FileStore) write(doc fileDocument) error {
	data, err := jsoniter.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
