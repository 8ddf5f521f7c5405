package player

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Handle wraps fetched preview bytes as a locally playable file. Every
// allocated handle must be released exactly once; Release is idempotent so
// racing completion paths cannot double-free.
type Handle struct {
	path    string
	release sync.Once
}

// NewHandle writes the audio bytes to a temporary file and returns the
// handle owning it.
func NewHandle(data []byte) (*Handle, error) {
	f, err := os.CreateTemp("", "sample-preview-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("allocate preview resource: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write preview resource: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close preview resource: %w", err)
	}

	return &Handle{path: f.Name()}, nil
}

// Path returns the playable file path.
func (h *Handle) Path() string {
	return h.path
}

// Release frees the underlying file. Only the first call has an effect.
func (h *Handle) Release() {
	h.release.Do(func() {
		if err := os.Remove(h.path); err != nil {
			logrus.Warnf("failed to remove preview resource %s: %v", h.path, err)
		}
	})
}
