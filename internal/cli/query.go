package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/usecase"
)

func queryCmd() *cobra.Command {
	var library string

	c := &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Run a JSONPath expression over the library data (e.g. $.books[*].title)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lib, err := openLibrary(library)
			if err != nil {
				return err
			}

			val, err := usecase.NewQuery(lib.library).Execute(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(val)
		},
	}

	c.Flags().StringVarP(&library, "library", "l", "", "Library root (optional; autodetected if omitted)")
	return c
}
