package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/infra/libraryfinder"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/infra/librarystore"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/infra/logger"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/infra/notify"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/ports"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/usecase"
)

type libraryCtx struct {
	root string
	cfg  domain.Config

	library *usecase.Library
}

// openLibrary resolves the library root, loads its config, and builds
// the manager with the JSON store and the console notifier wired in.
func openLibrary(libraryFlag string) (*libraryCtx, error) {
	root, err := resolveLibraryRoot(libraryFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := libraryfinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	store := librarystore.NewJSONStore(root, cfg)
	notifier := notify.NewConsole(cfg)

	lib, err := usecase.New(store, notifier, cfg, usecase.WithLogger(logger.L()))
	if err != nil {
		return nil, err
	}

	if w := lib.LoadWarning(); w != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	return &libraryCtx{
		root:    root,
		cfg:     cfg,
		library: lib,
	}, nil
}

func resolveLibraryRoot(libraryFlag string) (string, error) {
	l := strings.TrimSpace(libraryFlag)
	if l != "" {
		abs, err := filepath.Abs(l)
		if err != nil {
			return "", fmt.Errorf("invalid library path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.LibraryLocator = libraryfinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("library not found from %q (tip: run `biblioteca init`): %w", wd, err)
	}
	return root, nil
}
