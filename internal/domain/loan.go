package domain

// Loan records one borrowing of a book. Loans are append-only history:
// returning a book flips Returned instead of deleting the record.
type Loan struct {
	ID       string `json:"id"`
	BookID   int    `json:"book_id"`
	Borrower string `json:"borrower"`
	LoanDate Date   `json:"loan_date"`
	DueDate  Date   `json:"due_date"`
	Returned bool   `json:"returned"`
}

// NewLoan opens a loan starting today, due after the given period.
func NewLoan(id string, bookID int, borrower string, today Date, periodDays int) Loan {
	return Loan{
		ID:       id,
		BookID:   bookID,
		Borrower: borrower,
		LoanDate: today,
		DueDate:  today.AddDays(periodDays),
	}
}

// Active reports whether the loan is still open.
func (l Loan) Active() bool { return !l.Returned }

// Overdue reports whether an open loan is past its due date.
func (l Loan) Overdue(today Date) bool {
	return !l.Returned && today.After(l.DueDate)
}

// Fine computes the late fee as of today at the given daily rate.
// It is a pure function of the due date, today, and the returned flag;
// the value is never stored, so it keeps growing while an overdue loan
// stays open. Never negative.
func (l Loan) Fine(today Date, perDay float64) float64 {
	if l.Returned || !today.After(l.DueDate) {
		return 0
	}

	days := today.DaysSince(l.DueDate)
	if days < 0 {
		days = 0
	}
	return float64(days) * perDay
}

// Matches reports whether this is the open loan of bookID by borrower.
func (l Loan) Matches(bookID int, borrower string) bool {
	return l.BookID == bookID && l.Borrower == borrower && !l.Returned
}

// LoanStatus is a read-only projection of an active loan together with
// its live overdue/fine state as of "today".
type LoanStatus struct {
	Loan      Loan
	BookTitle string
	Overdue   bool
	Fine      float64
}
