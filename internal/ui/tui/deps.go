package tui

import (
	"log/slog"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/usecase"
)

type Deps struct {
	// Library is nil when no library root was found; the menu then
	// points the user at `biblioteca init` instead of the catalog.
	Library *usecase.Library
	Root    string

	Logger *slog.Logger
	Debug  bool
}
