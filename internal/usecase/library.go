package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/ports"
)

// Library owns the in-memory catalog and loan history. It is the only
// component that mutates them, and it rewrites the whole data file after
// every successful mutation: in-memory state and persisted state never
// diverge (a failed save rolls the mutation back).
//
// A single logical caller drives all mutations sequentially; Library is
// not safe for concurrent use. The only detached work is the due-date
// notification fired after a loan, which never synchronizes back.
type Library struct {
	store    ports.LibraryStore
	notifier ports.Notifier
	cfg      domain.Config
	logger   *slog.Logger

	now   func() time.Time
	newID func() string

	books []domain.Book
	loans []domain.Loan

	loadWarning string
	notifyWG    sync.WaitGroup
}

type Option func(*Library)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(l *Library) { l.now = now }
}

// WithIDGenerator overrides loan id generation (tests).
func WithIDGenerator(gen func() string) Option {
	return func(l *Library) { l.newID = gen }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New builds a Library and loads persisted state. A missing or corrupt
// data file is recoverable: the library starts empty and the condition
// is reported via LoadWarning. Any other load failure propagates.
func New(store ports.LibraryStore, notifier ports.Notifier, cfg domain.Config, opts ...Option) (*Library, error) {
	l := &Library{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}

	snap, err := store.Load()
	switch {
	case err == nil:
		l.books = snap.Books
		l.loans = snap.Loans
	case domain.IsKind(err, domain.KindNotFound):
		l.loadWarning = "no previous data found, starting with an empty library"
		l.logger.Warn("library.load.missing", "err", err)
	case domain.IsKind(err, domain.KindCorruptData):
		l.loadWarning = "data file is unreadable, starting with an empty library"
		l.logger.Warn("library.load.corrupt", "err", err)
	default:
		return nil, err
	}

	return l, nil
}

// LoadWarning reports a recovered load problem; empty when the data file
// loaded cleanly.
func (l *Library) LoadWarning() string { return l.loadWarning }

// AddBook appends a new book to the catalog and persists it. It fails
// without mutating anything if a book with the same id already exists.
func (l *Library) AddBook(b domain.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if _, ok := l.findBook(b.ID); ok {
		return &domain.OpError{
			Op:   "library.add_book",
			Kind: domain.KindDuplicate,
			Err:  fmt.Errorf("book id %d: %w", b.ID, domain.ErrDuplicate),
		}
	}

	l.books = append(l.books, b)
	if err := l.persist("library.add_book"); err != nil {
		l.books = l.books[:len(l.books)-1]
		return err
	}

	l.logger.Info("library.book_added", "id", b.ID, "title", b.Title)
	return nil
}

// FindBooks filters the catalog by a single attribute, in catalog order.
func (l *Library) FindBooks(field string, value string) ([]domain.Book, error) {
	f, err := domain.ParseSearchField(field)
	if err != nil {
		return nil, err
	}
	match, err := domain.BookMatcher(f, value)
	if err != nil {
		return nil, err
	}

	out := []domain.Book{}
	for _, b := range l.books {
		if match(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// LoanBook lends one copy of a book: stock goes down by one, a loan
// opens for the configured period, the new state is persisted, and a
// due-date reminder goes out detached (its outcome never affects the
// returned loan or error).
func (l *Library) LoanBook(ctx context.Context, bookID int, borrower string) (domain.Loan, error) {
	if l.hasActiveLoan(bookID, borrower) {
		return domain.Loan{}, &domain.OpError{
			Op:   "library.loan_book",
			Kind: domain.KindDuplicate,
			Err:  fmt.Errorf("%s already holds book %d: %w", borrower, bookID, domain.ErrDuplicate),
		}
	}

	idx, ok := l.findBook(bookID)
	if !ok {
		return domain.Loan{}, notFoundBook("library.loan_book", bookID)
	}
	if l.books[idx].Stock <= 0 {
		return domain.Loan{}, &domain.OpError{
			Op:   "library.loan_book",
			Kind: domain.KindNoStock,
			Err:  fmt.Errorf("%q: %w", l.books[idx].Title, domain.ErrNoStock),
		}
	}

	loan := domain.NewLoan(l.newID(), bookID, borrower, l.today(), l.cfg.Loans.PeriodDays)

	l.books[idx].Stock--
	l.loans = append(l.loans, loan)
	if err := l.persist("library.loan_book"); err != nil {
		l.books[idx].Stock++
		l.loans = l.loans[:len(l.loans)-1]
		return domain.Loan{}, err
	}

	l.logger.Info("library.loaned",
		"loan_id", loan.ID, "book_id", bookID, "borrower", borrower, "due", loan.DueDate.String())

	message := fmt.Sprintf("Remember to return %q before %s!", l.books[idx].Title, loan.DueDate)
	l.notifyWG.Add(1)
	go func() {
		defer l.notifyWG.Done()
		if err := l.notifier.Notify(ctx, borrower, message); err != nil {
			l.logger.Warn("library.notify_failed", "borrower", borrower, "err", err)
		}
	}()

	return loan, nil
}

// ReturnBook closes the first open loan matching (bookID, borrower) in
// insertion order, restores stock, persists, and reports the fine due as
// of today. The fine is computed for reporting only, never stored.
func (l *Library) ReturnBook(bookID int, borrower string) (domain.Loan, float64, error) {
	li := -1
	for i, loan := range l.loans {
		if loan.Matches(bookID, borrower) {
			li = i
			break
		}
	}
	if li < 0 {
		return domain.Loan{}, 0, &domain.OpError{
			Op:   "library.return_book",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("no active loan of book %d for %s: %w", bookID, borrower, domain.ErrNotFound),
		}
	}

	bi, ok := l.findBook(bookID)
	if !ok {
		return domain.Loan{}, 0, notFoundBook("library.return_book", bookID)
	}

	// Compute before flipping Returned: the fee reflects the loan as it
	// came back, and Fine is zero for returned loans.
	fine := l.loans[li].Fine(l.today(), l.cfg.Loans.DailyFine)

	l.loans[li].Returned = true
	l.books[bi].Stock++
	if err := l.persist("library.return_book"); err != nil {
		l.loans[li].Returned = false
		l.books[bi].Stock--
		return domain.Loan{}, 0, err
	}

	l.logger.Info("library.returned",
		"loan_id", l.loans[li].ID, "book_id", bookID, "borrower", borrower, "fine", fine)

	return l.loans[li], fine, nil
}

// Books returns a copy of the catalog in insertion order.
func (l *Library) Books() []domain.Book {
	out := make([]domain.Book, len(l.books))
	copy(out, l.books)
	return out
}

// ActiveLoans projects every open loan with its live overdue and fine
// status as of today.
func (l *Library) ActiveLoans() []domain.LoanStatus {
	today := l.today()

	out := []domain.LoanStatus{}
	for _, loan := range l.loans {
		if loan.Returned {
			continue
		}

		title := "unknown"
		if i, ok := l.findBook(loan.BookID); ok {
			title = l.books[i].Title
		}

		out = append(out, domain.LoanStatus{
			Loan:      loan,
			BookTitle: title,
			Overdue:   loan.Overdue(today),
			Fine:      loan.Fine(today, l.cfg.Loans.DailyFine),
		})
	}
	return out
}

// Snapshot returns the persisted-state shape of the current catalog and
// loan history.
func (l *Library) Snapshot() domain.Snapshot {
	books := make([]domain.Book, len(l.books))
	copy(books, l.books)
	loans := make([]domain.Loan, len(l.loans))
	copy(loans, l.loans)
	return domain.Snapshot{Books: books, Loans: loans}
}

// Wait blocks until detached notification deliveries are done. Loan
// operations themselves never wait; this exists so short-lived callers
// can drain before exiting.
func (l *Library) Wait() {
	l.notifyWG.Wait()
}

func (l *Library) today() domain.Date { return domain.DateOf(l.now()) }

func (l *Library) findBook(id int) (int, bool) {
	for i, b := range l.books {
		if b.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (l *Library) hasActiveLoan(bookID int, borrower string) bool {
	for _, loan := range l.loans {
		if loan.Matches(bookID, borrower) {
			return true
		}
	}
	return false
}

func (l *Library) persist(op string) error {
	if err := l.store.Save(l.Snapshot()); err != nil {
		l.logger.Error("library.persist_failed", "op", op, "err", err)
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindPersistence,
			Err:  err,
		}
	}
	return nil
}

func notFoundBook(op string, id int) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("book id %d: %w", id, domain.ErrNotFound),
	}
}
