package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haytac/emojify/internal/dataset"
)

// NewDatasetCmd creates the dataset command group.
func NewDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage the SQLite emoji dataset",
	}
	cmd.AddCommand(newDatasetImportCmd())
	cmd.AddCommand(newDatasetShowCmd())
	return cmd
}

func newDatasetImportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <dataset.json>",
		Short: "Import a JSON dataset into the SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" && AppCfg != nil {
				dbPath = AppCfg.Dataset.Path
			}
			if dbPath == "" {
				return fmt.Errorf("no database path given (use --db or set dataset.path)")
			}

			records, err := dataset.NewFile(args[0]).Load(cmd.Context())
			if err != nil {
				return err
			}

			store, err := dataset.OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Import(cmd.Context(), records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d emoji into %s\n", n, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to dataset.path from config)")
	return cmd
}

func newDatasetShowCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the emoji stored in the SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" && AppCfg != nil {
				dbPath = AppCfg.Dataset.Path
			}
			if dbPath == "" {
				return fmt.Errorf("no database path given (use --db or set dataset.path)")
			}

			records, err := dataset.NewSQLite(dbPath).Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				fmt.Fprintf(out, ":%s:\t%s\t%s\n", rec.Name, rec.Unicode, rec.Description)
			}
			fmt.Fprintf(out, "%d emoji\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to dataset.path from config)")
	return cmd
}
