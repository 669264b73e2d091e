package cmd

import (
	"fmt"

	"github.com/abhisek/mathtravel/internal/app"
	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the content catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Catalog: content.Load(),
		Store:   st,
	})
}
