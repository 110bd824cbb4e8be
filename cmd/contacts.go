package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/permit-leads/internal/store"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage the prior-contact database",
}

var contactsImportCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Seed the contact database from a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Migrate(cmd.Context()); err != nil {
			return err
		}

		n, err := store.ImportCSV(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		zap.L().Info("contacts imported", zap.Int("count", n), zap.String("db", cfg.Store.Path))
		fmt.Printf("%d contacts imported into %s\n", n, cfg.Store.Path)
		return nil
	},
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Migrate(cmd.Context()); err != nil {
			return err
		}

		contacts, err := s.All(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range contacts {
			fmt.Printf("%-40s %-16s %s\n", c.Company, c.Phone, c.Email)
		}
		fmt.Printf("\n%d contacts\n", len(contacts))
		return nil
	},
}

func init() {
	contactsCmd.AddCommand(contactsImportCmd)
	contactsCmd.AddCommand(contactsListCmd)
	rootCmd.AddCommand(contactsCmd)
}
