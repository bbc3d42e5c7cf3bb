package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const perDay = 0.50

func TestNewLoanDueDate(t *testing.T) {
	today := NewDate(2026, time.March, 1)
	l := NewLoan("loan-1", 7, "alice", today, 14)

	assert.Equal(t, 7, l.BookID)
	assert.Equal(t, "alice", l.Borrower)
	assert.True(t, l.LoanDate.Equal(today))
	assert.True(t, l.DueDate.Equal(today.AddDays(14)))
	assert.True(t, l.Active())
}

func TestFineZeroUpToDueDate(t *testing.T) {
	due := NewDate(2026, time.March, 15)
	l := Loan{BookID: 1, Borrower: "alice", DueDate: due}

	assert.Zero(t, l.Fine(due.AddDays(-3), perDay))
	assert.Zero(t, l.Fine(due, perDay))
	assert.False(t, l.Overdue(due))
}

func TestFineTwentyDaysOverdue(t *testing.T) {
	due := NewDate(2026, time.March, 15)
	l := Loan{BookID: 1, Borrower: "alice", DueDate: due}

	today := due.AddDays(20)
	assert.InDelta(t, 10.00, l.Fine(today, perDay), 1e-9)
	assert.True(t, l.Overdue(today))
}

func TestFineMonotonicPastDueDate(t *testing.T) {
	due := NewDate(2026, time.March, 15)
	l := Loan{BookID: 1, Borrower: "alice", DueDate: due}

	prev := 0.0
	for days := 0; days <= 30; days++ {
		fine := l.Fine(due.AddDays(days), perDay)
		assert.GreaterOrEqual(t, fine, prev, "fine must not decrease as time advances (day %d)", days)
		prev = fine
	}
}

func TestFineZeroOnceReturned(t *testing.T) {
	due := NewDate(2026, time.March, 15)
	l := Loan{BookID: 1, Borrower: "alice", DueDate: due, Returned: true}

	assert.Zero(t, l.Fine(due.AddDays(100), perDay))
	assert.False(t, l.Overdue(due.AddDays(100)))
}

func TestLoanMatches(t *testing.T) {
	l := Loan{BookID: 3, Borrower: "bob"}

	assert.True(t, l.Matches(3, "bob"))
	assert.False(t, l.Matches(3, "alice"))
	assert.False(t, l.Matches(4, "bob"))

	l.Returned = true
	assert.False(t, l.Matches(3, "bob"))
}
