// internal/souls/file.go
//
// Append-only text-file implementation of Store: the Hall of Souls
// scroll. Each escape is one fixed-template block; the file is only
// ever appended to or dumped whole, never parsed back.
//
// Single-player, single-process use is assumed: there is no file
// locking, so concurrent writers could interleave blocks.

package souls

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FileStore writes the scroll at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore returns a store over the given path. The file is
// created on first Record.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the scroll's location, for display.
func (s *FileStore) Path() string { return s.path }

// Record appends one entry block. Open-append-close in a single
// synchronous operation.
func (s *FileStore) Record(ctx context.Context, e Entry) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	rule := strings.Repeat("=", 60)
	block := fmt.Sprintf(`
%s
SOUL FREED: %s
Date of Escape: %s
Life Force Remaining: %d/100
Status: ESCAPED THE HAUNTED MANSION
Achievement: Chess Master of the Supernatural
%s
`, rule, e.Name, e.EscapedAt.Format("2006-01-02 15:04:05"), e.Health, rule)

	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("append %s: %w", s.path, err)
	}
	return nil
}

// Dump returns the whole scroll. A missing or empty file is not an
// error: the hall is simply empty.
func (s *FileStore) Dump(ctx context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", s.path, err)
	}
	return string(b), nil
}
