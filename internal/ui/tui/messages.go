package tui

import "github.com/FabianGG03/Gestor-Biblioteca/internal/domain"

type bookAddedMsg struct {
	title string
	err   error
}

type booksListedMsg struct {
	books []domain.Book
	query string
	err   error
}

type loanDoneMsg struct {
	borrower string
	title    string
	due      domain.Date
	err      error
}

type returnDoneMsg struct {
	borrower string
	fine     float64
	err      error
}

type loansListedMsg struct {
	loans []domain.LoanStatus
	err   error
}
