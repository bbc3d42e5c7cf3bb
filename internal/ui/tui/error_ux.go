package tui

import (
	"errors"
	"strings"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

// userMessage translates an operation error into one short line for the
// toast bar. Details stay in the log file.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "loan") || strings.Contains(oe.Op, "return") {
				return "No matching loan or book"
			}
			return "Book not found"

		case domain.KindDuplicate:
			if strings.Contains(oe.Op, "loan") {
				return "That borrower already has this book"
			}
			return "A book with that id already exists"

		case domain.KindNoStock:
			return "No copies available"

		case domain.KindInvalidInput:
			if oe.Err != nil {
				return capitalize(oe.Err.Error())
			}
			return "Invalid input"

		case domain.KindPersistence:
			return "Could not save the catalog (see logs)"

		case domain.KindCorruptData:
			return "Catalog file is corrupt (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
