package ports

import "github.com/FabianGG03/Gestor-Biblioteca/internal/domain"

// LibraryStore persists the whole library state. Save rewrites the full
// document; the manager calls it after every successful mutation.
type LibraryStore interface {
	Load() (domain.Snapshot, error)
	Save(snapshot domain.Snapshot) error
}
