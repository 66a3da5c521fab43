package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uxmetrics/internal/exchange"
)

func archiveCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "archive", Short: "Export or import the full workspace dataset"}
	cmd.AddCommand(archiveExportCmd())
	cmd.AddCommand(archiveImportCmd())
	return cmd
}

func archiveExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all studies, people, sessions, and responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				archive, err := exchange.Export(ctx, a.db)
				if err != nil {
					return err
				}
				w := os.Stdout
				if out != "" {
					f, err := os.Create(out)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				if err := exchange.Write(w, archive); err != nil {
					return err
				}
				if out != "" {
					fmt.Printf("Archive written to %s\n", out)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

func archiveImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported archive (existing IDs are skipped)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				archive, err := exchange.Read(f)
				if err != nil {
					return err
				}
				stats, err := exchange.Import(ctx, a.db, archive, a.log)
				if err != nil {
					return err
				}
				return printResult(stats, func() {
					fmt.Printf("Imported %d studies, %d people, %d sessions, %d responses (%d skipped)\n",
						stats.Studies, stats.People, stats.Sessions, stats.Responses, stats.Skipped)
				})
			})
		},
	}
	return cmd
}
