package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/usecase"
)

func cmdAddBook(lib *usecase.Library, idRaw, title, author, stockRaw string) tea.Cmd {
	return func() tea.Msg {
		id, err := parseIntField("id", idRaw)
		if err != nil {
			return bookAddedMsg{title: title, err: err}
		}

		stock := 0
		if strings.TrimSpace(stockRaw) != "" {
			stock, err = parseIntField("stock", stockRaw)
			if err != nil {
				return bookAddedMsg{title: title, err: err}
			}
		}

		b := domain.Book{ID: id, Title: title, Author: author, Stock: stock}
		return bookAddedMsg{title: title, err: lib.AddBook(b)}
	}
}

func cmdListBooks(lib *usecase.Library) tea.Cmd {
	return func() tea.Msg {
		return booksListedMsg{books: lib.Books()}
	}
}

func cmdSearchBooks(lib *usecase.Library, field, value string) tea.Cmd {
	return func() tea.Msg {
		books, err := lib.FindBooks(field, value)
		query := fmt.Sprintf("%s = %q", strings.TrimSpace(field), strings.TrimSpace(value))
		return booksListedMsg{books: books, query: query, err: err}
	}
}

func cmdLoanBook(lib *usecase.Library, idRaw, borrower string) tea.Cmd {
	return func() tea.Msg {
		id, err := parseIntField("book id", idRaw)
		if err != nil {
			return loanDoneMsg{borrower: borrower, err: err}
		}

		// Background, not a per-command context: the reminder outlives
		// this command and is drained when the program exits.
		loan, err := lib.LoanBook(context.Background(), id, borrower)
		if err != nil {
			return loanDoneMsg{borrower: borrower, err: err}
		}

		return loanDoneMsg{
			borrower: loan.Borrower,
			title:    bookTitle(lib, loan.BookID),
			due:      loan.DueDate,
		}
	}
}

func cmdReturnBook(lib *usecase.Library, idRaw, borrower string) tea.Cmd {
	return func() tea.Msg {
		id, err := parseIntField("book id", idRaw)
		if err != nil {
			return returnDoneMsg{borrower: borrower, err: err}
		}

		loan, fine, err := lib.ReturnBook(id, borrower)
		if err != nil {
			return returnDoneMsg{borrower: borrower, err: err}
		}
		return returnDoneMsg{borrower: loan.Borrower, fine: fine}
	}
}

func cmdListLoans(lib *usecase.Library) tea.Cmd {
	return func() tea.Msg {
		return loansListedMsg{loans: lib.ActiveLoans()}
	}
}

func parseIntField(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &domain.OpError{
			Op:   "tui.form",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%s must be a number, got %q", name, raw),
		}
	}
	return n, nil
}

func bookTitle(lib *usecase.Library, id int) string {
	for _, b := range lib.Books() {
		if b.ID == id {
			return b.Title
		}
	}
	return fmt.Sprintf("book %d", id)
}
