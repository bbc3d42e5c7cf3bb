package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/buildinfo"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/infra/libraryfinder"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/infra/logger"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "biblioteca",
		Short:        "biblioteca is a library catalog and loan tracker",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := libraryfinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Logger: logger.L(),
				Debug:  debug,
			}

			// The menu still opens without a library; it shows how to
			// create one instead of the catalog.
			if lib, err := openLibrary(""); err == nil {
				deps.Library = lib.library
				deps.Root = lib.root
			}

			runErr := tui.Run(deps)

			// Reminders fired from the menu are detached; drain them so
			// they are not lost with the process.
			if deps.Library != nil {
				deps.Library.Wait()
			}
			return runErr
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .biblioteca/logs/biblioteca.log")

	cmd.AddCommand(
		initCmd(),
		addCmd(),
		listCmd(),
		findCmd(),
		loanCmd(),
		returnCmd(),
		loansCmd(),
		queryCmd(),
	)
	return cmd
}
