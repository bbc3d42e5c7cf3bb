package ports

// LibraryLocator finds a library root starting from an arbitrary directory.
type LibraryLocator interface {
	FindRoot(startDir string) (string, error)
}
