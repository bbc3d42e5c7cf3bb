package librarystore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

func testSnapshot() domain.Snapshot {
	loanDate := domain.NewDate(2026, time.February, 3)
	return domain.Snapshot{
		Books: []domain.Book{
			{ID: 1, Title: "Dune", Author: "Herbert", Stock: 2},
			{ID: 2, Title: "Hyperion", Author: "Simmons", Stock: 0},
		},
		Loans: []domain.Loan{
			{
				ID:       "loan-1",
				BookID:   2,
				Borrower: "alice",
				LoanDate: loanDate,
				DueDate:  loanDate.AddDays(14),
				Returned: false,
			},
			{
				ID:       "loan-2",
				BookID:   1,
				Borrower: "bob",
				LoanDate: loanDate.AddDays(-30),
				DueDate:  loanDate.AddDays(-16),
				Returned: true,
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	want := testSnapshot()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if !reflect.DeepEqual(want, got) {
		t.Fatalf("round trip mismatch:\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestSaveUsesConfiguredFileName(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.DataFile = "state.json"

	store := NewJSONStore(tmp, cfg)
	if err := store.Save(testSnapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "state.json")); err != nil {
		t.Fatalf("expected data file at state.json: %v", err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	if err := store.Save(testSnapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be renamed away, stat err=%v", err)
	}
}

func TestLoadMissingFileIsNotFound(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	_, err := store.Load()
	if err == nil {
		t.Fatal("expected error for missing data file")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got: %v", err)
	}
}

func TestLoadCorruptFileIsCorruptData(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := store.Load()
	if err == nil {
		t.Fatal("expected error for corrupt data file")
	}
	if !domain.IsKind(err, domain.KindCorruptData) {
		t.Fatalf("expected corrupt_data kind, got: %v", err)
	}
}

func TestLoadBadDateIsCorruptData(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	doc := `{"books":[],"loans":[{"id":"x","book_id":1,"borrower":"a","loan_date":"03/02/2026","due_date":"2026-02-17","returned":false}]}`
	if err := os.WriteFile(store.Path(), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := store.Load()
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if !domain.IsKind(err, domain.KindCorruptData) {
		t.Fatalf("expected corrupt_data kind, got: %v", err)
	}
}

func TestLoadNormalizesMissingArrays(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	if err := os.WriteFile(store.Path(), []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if snap.Books == nil || snap.Loans == nil {
		t.Fatalf("expected empty slices, got books=%v loans=%v", snap.Books, snap.Loans)
	}
}

func TestSaveOverwritesPreviousState(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	first := testSnapshot()
	if err := store.Save(first); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	second := domain.Snapshot{
		Books: []domain.Book{{ID: 9, Title: "Ubik", Author: "Dick", Stock: 1}},
		Loans: []domain.Loan{},
	}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got.Books) != 1 || got.Books[0].Title != "Ubik" {
		t.Fatalf("expected second snapshot only, got: %+v", got)
	}
	if len(got.Loans) != 0 {
		t.Fatalf("expected no loans, got: %+v", got.Loans)
	}
}
