package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
)

func addCmd() *cobra.Command {
	var library string
	var id int
	var title string
	var author string
	var stock int

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			lib, err := openLibrary(library)
			if err != nil {
				return err
			}

			b := domain.Book{ID: id, Title: title, Author: author, Stock: stock}
			if err := lib.library.AddBook(b); err != nil {
				return err
			}

			fmt.Printf("Book %q added\n", title)
			return nil
		},
	}

	c.Flags().StringVarP(&library, "library", "l", "", "Library root (optional; autodetected if omitted)")
	c.Flags().IntVar(&id, "id", 0, "Book id (required)")
	c.Flags().StringVarP(&title, "title", "t", "", "Title (required)")
	c.Flags().StringVarP(&author, "author", "a", "", "Author (required)")
	c.Flags().IntVarP(&stock, "stock", "s", 0, "Initial stock")

	_ = c.MarkFlagRequired("id")
	_ = c.MarkFlagRequired("title")
	_ = c.MarkFlagRequired("author")
	return c
}

func listCmd() *cobra.Command {
	var library string
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List all books in the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			lib, err := openLibrary(library)
			if err != nil {
				return err
			}

			return printBooks(os.Stdout, lib.library.Books(), format)
		},
	}

	c.Flags().StringVarP(&library, "library", "l", "", "Library root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func findCmd() *cobra.Command {
	var library string
	var format string

	c := &cobra.Command{
		Use:   "find <field> <value>",
		Short: "Search books by one field (id|title|author|stock)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			lib, err := openLibrary(library)
			if err != nil {
				return err
			}

			books, err := lib.library.FindBooks(args[0], args[1])
			if err != nil {
				return err
			}

			if len(books) == 0 && format != "json" {
				fmt.Println("(no books found)")
				return nil
			}
			return printBooks(os.Stdout, books, format)
		},
	}

	c.Flags().StringVarP(&library, "library", "l", "", "Library root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printBooks(w io.Writer, books []domain.Book, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	case "pretty", "":
		if len(books) == 0 {
			fmt.Fprintln(w, "(no books in the catalog)")
			return nil
		}
		for _, b := range books {
			fmt.Fprintf(w, "ID: %d | Title: %s | Author: %s | Stock: %d\n", b.ID, b.Title, b.Author, b.Stock)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
