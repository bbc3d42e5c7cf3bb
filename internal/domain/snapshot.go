package domain

// Snapshot is the whole persisted state: the full catalog and the full
// loan history, both in insertion order. The data file is this struct
// serialized as one JSON document.
type Snapshot struct {
	Books []Book `json:"books"`
	Loans []Loan `json:"loans"`
}

// LibrarySpec describes a library directory to initialize.
type LibrarySpec struct {
	Root string
}
