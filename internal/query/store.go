// Package query persists query-history records as JSON files under the
// workspace's data/queries directory.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"newssense/internal/paths"
	"newssense/internal/util"

	"github.com/google/uuid"
)

type Record struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	dir string
}

func NewStore(ws *paths.Workspace) (*Store, error) {
	rel, err := ws.EnsureDataDirectory("queries")
	if err != nil {
		return nil, err
	}
	return &Store{dir: filepath.Join(ws.Root, rel)}, nil
}

// Save assigns the record an id, stamps it, and writes it atomically.
func (s *Store) Save(queryText, answer string) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Query:     util.SanitizeText(queryText),
		Answer:    util.SanitizeText(answer),
		CreatedAt: time.Now().UTC(),
	}
	path := util.SafeJoin(s.dir, rec.ID+".json")
	if err := util.WriteJSONAtomic(path, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Store) Load(id string) (Record, error) {
	b, err := os.ReadFile(util.SafeJoin(s.dir, id+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, fmt.Errorf("query %s: %w", id, util.ErrNoQueryRecord)
	}
	if err != nil {
		return Record{}, fmt.Errorf("read query %s: %w", id, err)
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, fmt.Errorf("decode query %s: %w", id, err)
	}
	return rec, nil
}

// Recent returns up to n records, newest first by file modification time.
// Files that fail to decode are skipped.
func (s *Store) Recent(n int) ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read queries dir: %w", err)
	}

	type candidate struct {
		path string
		mod  time.Time
	}
	var files []candidate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{path: filepath.Join(s.dir, e.Name()), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mod.After(files[j].mod) })

	var recs []Record
	for _, f := range files {
		if len(recs) == n {
			break
		}
		b, err := os.ReadFile(f.path)
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(b, &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
