package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderBooks(books []domain.Book, query string) string {
	var b strings.Builder

	if query != "" {
		b.WriteString("Search: ")
		b.WriteString(query)
		b.WriteString("\n\n")
	}

	if len(books) == 0 {
		b.WriteString("(no books)\n")
		return b.String()
	}

	for _, bk := range books {
		b.WriteString(fmt.Sprintf("  %3d  %-32s  %-20s  stock %d\n",
			bk.ID, clampString(bk.Title, 32), clampString(bk.Author, 20), bk.Stock))
	}
	return b.String()
}

func renderLoans(loans []domain.LoanStatus) string {
	if len(loans) == 0 {
		return "(no active loans)\n"
	}

	var b strings.Builder
	for _, s := range loans {
		status := "on time"
		if s.Overdue {
			status = fmt.Sprintf("OVERDUE  fine $%.2f", s.Fine)
		}
		b.WriteString(fmt.Sprintf("  %-16s  %-32s  due %s  %s\n",
			clampString(s.Loan.Borrower, 16), clampString(s.BookTitle, 32), s.Loan.DueDate, status))
	}
	return b.String()
}
