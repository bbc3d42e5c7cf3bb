package libraryfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/ports"
)

// Finder locates a library root by searching for biblioteca.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "biblioteca.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: "biblioteca.yaml"}
}

var _ ports.LibraryLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "libraryfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "libraryfinder.findroot",
			Kind: domain.KindPersistence,
			Err:  err,
		}
	}

	// If the caller passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "libraryfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
