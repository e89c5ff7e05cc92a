package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
)

// URLPrefix is the static route the stored clips are served under.
const URLPrefix = "/static/audio"

// audioStore keeps raw audio clips on the local filesystem. Clips are
// created alongside a turn and removed only by Clear; a clip orphaned by a
// failed transcription stays on disk until the next session reset.
type audioStore struct {
	dir string
}

// NewAudioStore creates an AudioStore rooted at dir, creating it if needed.
func NewAudioStore(dir string) (domain.AudioStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, domain.NewStorageError("could not create the audio directory", err)
	}
	return &audioStore{dir: dir}, nil
}

// Save writes the clip under a random name and returns its playback URL.
func (s *audioStore) Save(data []byte, ext string) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "webm"
	}
	name := fmt.Sprintf("audio_%s.%s", uuid.New().String(), ext)

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", domain.NewStorageError("could not store the audio clip", err)
	}
	return URLPrefix + "/" + name, nil
}

// Clear removes every stored clip. Missing files are not an error.
func (s *audioStore) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return domain.NewStorageError("could not list the audio directory", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
			return domain.NewStorageError("could not remove a stored audio clip", err)
		}
	}
	return nil
}
