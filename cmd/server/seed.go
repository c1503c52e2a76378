package main

import (
	"io"

	"review-api/internal/database"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin and demo accounts if they are missing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, db, err := openStore()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		results, err := database.Seed(cmd.Context(), db, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return err
		}

		return printSeedResults(cmd.OutOrStdout(), results)
	},
}

var (
	createdLabel = color.New(color.FgHiGreen).Sprint("created")
	existsLabel  = color.New(color.FgHiYellow).Sprint("exists")
)

func printSeedResults(w io.Writer, results []database.SeedResult) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header([]string{"Name", "Email", "Role", "Status"})

	for _, result := range results {
		role := "employee"
		if result.Account.IsAdmin {
			role = "admin"
		}
		status := existsLabel
		if result.Created {
			status = createdLabel
		}
		if err := table.Append([]string{result.Account.Name, result.Account.Email, role, status}); err != nil {
			return err
		}
	}

	return table.Render()
}
