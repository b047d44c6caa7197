package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Sink receives encoded drawings. Implementations must be safe for
// concurrent use.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}

// DirSink writes each drawing to Root/name, creating directories on demand.
type DirSink struct {
	Root string

	mu   sync.Mutex
	made map[string]bool
}

// NewDirSink returns a DirSink rooted at root.
func NewDirSink(root string) *DirSink {
	return &DirSink{Root: root, made: make(map[string]bool)}
}

// Put implements Sink.
func (s *DirSink) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(s.Root, filepath.FromSlash(name))
	if err := s.mkdir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}

	return nil
}

func (s *DirSink) mkdir(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.made == nil {
		s.made = make(map[string]bool)
	}
	if s.made[dir] {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("batch: mkdir %s: %w", dir, err)
	}
	s.made[dir] = true

	return nil
}
