package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

func loanCmd() *cobra.Command {
	var library string
	var bookID int
	var borrower string

	c := &cobra.Command{
		Use:   "loan",
		Short: "Loan a book to a borrower",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := openLibrary(library)
			if err != nil {
				return err
			}

			loan, err := lib.library.LoanBook(cmd.Context(), bookID, borrower)
			if err != nil {
				return err
			}

			fmt.Printf("Book loaned to %s. Return before %s (loan %s)\n", borrower, loan.DueDate, loan.ID)

			// One-shot process: drain the detached reminder before exit so
			// it is not lost with the process.
			lib.library.Wait()
			return nil
		},
	}

	c.Flags().StringVarP(&library, "library", "l", "", "Library root (optional; autodetected if omitted)")
	c.Flags().IntVar(&bookID, "book", 0, "Book id (required)")
	c.Flags().StringVarP(&borrower, "borrower", "b", "", "Borrower name (required)")

	_ = c.MarkFlagRequired("book")
	_ = c.MarkFlagRequired("borrower")
	return c
}

func returnCmd() *cobra.Command {
	var library string
	var bookID int
	var borrower string

	c := &cobra.Command{
		Use:   "return",
		Short: "Return a loaned book",
		RunE: func(_ *cobra.Command, _ []string) error {
			lib, err := openLibrary(library)
			if err != nil {
				return err
			}

			_, fine, err := lib.library.ReturnBook(bookID, borrower)
			if err != nil {
				return err
			}

			if fine > 0 {
				fmt.Printf("Late return. Fine to pay: $%.2f\n", fine)
			} else {
				fmt.Println("Book returned on time")
			}
			return nil
		},
	}

	c.Flags().StringVarP(&library, "library", "l", "", "Library root (optional; autodetected if omitted)")
	c.Flags().IntVar(&bookID, "book", 0, "Book id (required)")
	c.Flags().StringVarP(&borrower, "borrower", "b", "", "Borrower name (required)")

	_ = c.MarkFlagRequired("book")
	_ = c.MarkFlagRequired("borrower")
	return c
}

func loansCmd() *cobra.Command {
	var library string
	var format string

	c := &cobra.Command{
		Use:   "loans",
		Short: "List active loans with their live fine status",
		RunE: func(_ *cobra.Command, _ []string) error {
			lib, err := openLibrary(library)
			if err != nil {
				return err
			}

			return printLoans(os.Stdout, lib.library.ActiveLoans(), format)
		},
	}

	c.Flags().StringVarP(&library, "library", "l", "", "Library root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printLoans(w io.Writer, loans []domain.LoanStatus, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := make([]map[string]any, 0, len(loans))
		for _, s := range loans {
			payload = append(payload, map[string]any{
				"loan":       s.Loan,
				"book_title": s.BookTitle,
				"overdue":    s.Overdue,
				"fine":       s.Fine,
			})
		}
		return enc.Encode(payload)
	case "pretty", "":
		if len(loans) == 0 {
			fmt.Fprintln(w, "(no active loans)")
			return nil
		}
		for _, s := range loans {
			status := "on time"
			if s.Overdue {
				status = fmt.Sprintf("overdue (fine: $%.2f)", s.Fine)
			}
			fmt.Fprintf(w, "Borrower: %s | Book: %s | Due: %s | %s\n",
				s.Loan.Borrower, s.BookTitle, s.Loan.DueDate, status)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
