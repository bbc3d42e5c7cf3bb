package librarystore

import (
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/ports"
)

const defaultDataFile = "biblioteca.json"

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONStore keeps the whole library state in a single JSON document and
// rewrites it on every save. Single writer; no locking.
type JSONStore struct {
	path string
}

func NewJSONStore(root string, cfg domain.Config) *JSONStore {
	file := strings.TrimSpace(cfg.Paths.DataFile)
	if file == "" {
		file = defaultDataFile
	}
	return &JSONStore{path: filepath.Join(root, file)}
}

var _ ports.LibraryStore = (*JSONStore)(nil)

// Path returns the data file location.
func (s *JSONStore) Path() string { return s.path }

// Load reads the entire data file. A missing file maps to KindNotFound
// and unparseable content to KindCorruptData; both are recoverable by
// the caller (empty-state fallback).
func (s *JSONStore) Load() (domain.Snapshot, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		kind := domain.KindPersistence
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return domain.Snapshot{}, &domain.OpError{
			Op:   "librarystore.load",
			Kind: kind,
			Path: s.path,
			Err:  err,
		}
	}

	var snap domain.Snapshot
	if err := codec.Unmarshal(b, &snap); err != nil {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "librarystore.load",
			Kind: domain.KindCorruptData,
			Path: s.path,
			Err:  err,
		}
	}

	if snap.Books == nil {
		snap.Books = []domain.Book{}
	}
	if snap.Loans == nil {
		snap.Loans = []domain.Loan{}
	}
	return snap, nil
}

// Save serializes the snapshot and atomically overwrites the data file:
// tmp then rename.
func (s *JSONStore) Save(snap domain.Snapshot) error {
	if snap.Books == nil {
		snap.Books = []domain.Book{}
	}
	if snap.Loans == nil {
		snap.Loans = []domain.Loan{}
	}

	b, err := codec.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "librarystore.marshal",
			Kind: domain.KindPersistence,
			Path: s.path,
			Err:  err,
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "librarystore.mkdir",
			Kind: domain.KindPersistence,
			Path: filepath.Dir(s.path),
			Err:  err,
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "librarystore.write",
			Kind: domain.KindPersistence,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "librarystore.rename",
			Kind: domain.KindPersistence,
			Path: s.path,
			Err:  err,
		}
	}

	return nil
}
