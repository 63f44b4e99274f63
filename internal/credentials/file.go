package credentials

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// File persists the credential as a single opaque string at a fixed
// path, the daemon's stand-in for the browser's local storage key.
type File struct {
	path string

	mu    sync.RWMutex
	token string
}

func NewFile(path string) (*File, error) {
	f := &File{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	f.token = strings.TrimSpace(string(raw))
	return f, nil
}

var _ Store = (*File)(nil)

func (f *File) Token() (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.token, f.token != ""
}

func (f *File) Save(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	f.token = token
	return nil
}

func (f *File) Delete() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	f.token = ""
	return nil
}
