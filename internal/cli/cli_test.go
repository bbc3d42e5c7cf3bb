package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

// --- printBooks ---

func TestPrintBooksPretty(t *testing.T) {
	var buf bytes.Buffer
	books := []domain.Book{
		{ID: 1, Title: "Dune", Author: "Herbert", Stock: 2},
		{ID: 2, Title: "Hyperion", Author: "Simmons", Stock: 0},
	}

	if err := printBooks(&buf, books, "pretty"); err != nil {
		t.Fatalf("printBooks error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Dune") || !strings.Contains(out, "Hyperion") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Stock: 0") {
		t.Fatalf("expected stock in output: %q", out)
	}
}

func TestPrintBooksPrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printBooks(&buf, nil, "pretty"); err != nil {
		t.Fatalf("printBooks error: %v", err)
	}
	if !strings.Contains(buf.String(), "no books") {
		t.Fatalf("expected empty-catalog note, got: %q", buf.String())
	}
}

func TestPrintBooksJSON(t *testing.T) {
	var buf bytes.Buffer
	books := []domain.Book{{ID: 1, Title: "Dune", Author: "Herbert", Stock: 2}}

	if err := printBooks(&buf, books, "json"); err != nil {
		t.Fatalf("printBooks error: %v", err)
	}

	var decoded []domain.Book
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Title != "Dune" {
		t.Fatalf("unexpected decoded value: %+v", decoded)
	}
}

func TestPrintBooksUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printBooks(&buf, nil, "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

// --- printLoans ---

func TestPrintLoansPretty(t *testing.T) {
	due := domain.NewDate(2026, time.August, 10)
	loans := []domain.LoanStatus{
		{
			Loan:      domain.Loan{ID: "a", BookID: 1, Borrower: "alice", DueDate: due},
			BookTitle: "Dune",
			Overdue:   true,
			Fine:      2.50,
		},
		{
			Loan:      domain.Loan{ID: "b", BookID: 2, Borrower: "bob", DueDate: due.AddDays(30)},
			BookTitle: "Hyperion",
		},
	}

	var buf bytes.Buffer
	if err := printLoans(&buf, loans, "pretty"); err != nil {
		t.Fatalf("printLoans error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "overdue (fine: $2.50)") {
		t.Fatalf("expected overdue status with fine, got: %q", out)
	}
	if !strings.Contains(out, "on time") {
		t.Fatalf("expected on-time status, got: %q", out)
	}
}

func TestPrintLoansPrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printLoans(&buf, nil, "pretty"); err != nil {
		t.Fatalf("printLoans error: %v", err)
	}
	if !strings.Contains(buf.String(), "no active loans") {
		t.Fatalf("expected empty note, got: %q", buf.String())
	}
}

func TestPrintLoansJSON(t *testing.T) {
	loans := []domain.LoanStatus{
		{
			Loan:      domain.Loan{ID: "a", BookID: 1, Borrower: "alice"},
			BookTitle: "Dune",
			Fine:      1.00,
		},
	}

	var buf bytes.Buffer
	if err := printLoans(&buf, loans, "json"); err != nil {
		t.Fatalf("printLoans error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["book_title"] != "Dune" {
		t.Fatalf("unexpected decoded value: %+v", decoded)
	}
}

// --- resolveLibraryRoot ---

func TestResolveLibraryRootExplicitFlag(t *testing.T) {
	tmp := t.TempDir()

	root, err := resolveLibraryRoot(tmp)
	if err != nil {
		t.Fatalf("resolveLibraryRoot error: %v", err)
	}
	if root != tmp {
		t.Fatalf("expected %q, got %q", tmp, root)
	}
}

func TestResolveLibraryRootTrimsWhitespace(t *testing.T) {
	tmp := t.TempDir()

	root, err := resolveLibraryRoot("  " + tmp + "  ")
	if err != nil {
		t.Fatalf("resolveLibraryRoot error: %v", err)
	}
	if root != tmp {
		t.Fatalf("expected %q, got %q", tmp, root)
	}
}
