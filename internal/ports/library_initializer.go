package ports

import "github.com/FabianGG03/Gestor-Biblioteca/internal/domain"

type LibraryInitializer interface {
	Init(spec domain.LibrarySpec, force bool) error
}
