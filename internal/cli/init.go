package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/infra/fslibrary"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/ports"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a library directory (config, logs, gitignore)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory %q: %w", dir, err)
			}

			var initializer ports.LibraryInitializer = fslibrary.NewInitializer()
			if err := initializer.Init(domain.LibrarySpec{Root: abs}, force); err != nil {
				return err
			}

			fmt.Printf("Library initialized at %s\n", abs)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
