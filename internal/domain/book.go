package domain

import (
	"fmt"
	"strings"
)

// Book is a catalog entry. Stock counts the copies currently on the
// shelf, i.e. not out on loan. Books are never deleted from the catalog.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}

// Validate checks field-level invariants before a book enters the catalog.
func (b Book) Validate() error {
	switch {
	case b.ID <= 0:
		return invalidBook(fmt.Errorf("id must be a positive integer, got %d", b.ID))
	case strings.TrimSpace(b.Title) == "":
		return invalidBook(fmt.Errorf("title is required"))
	case strings.TrimSpace(b.Author) == "":
		return invalidBook(fmt.Errorf("author is required"))
	case b.Stock < 0:
		return invalidBook(fmt.Errorf("stock must not be negative, got %d", b.Stock))
	}
	return nil
}

func invalidBook(err error) error {
	return &OpError{
		Op:   "domain.validate_book",
		Kind: KindInvalidInput,
		Err:  err,
	}
}
