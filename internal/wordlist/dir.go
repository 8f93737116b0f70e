package wordlist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// DirSource reads word lists from <dir>/<key>.json on the local filesystem.
// Useful when the word-list corpus is deployed next to the bot.
type DirSource struct {
	dir string
}

// NewDirSource creates a filesystem-backed source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Fetch reads and decodes one date's word list. A missing file maps to
// ErrNotFound.
func (s *DirSource) Fetch(_ context.Context, dateKey string) ([]entities.WordEntry, error) {
	path := filepath.Join(s.dir, dateKey+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []entities.WordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	return entries, nil
}
