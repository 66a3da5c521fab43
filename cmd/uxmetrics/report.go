package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uxmetrics/internal/report"
)

func reportCmd() *cobra.Command {
	var study, commentary, out string
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a study metrics report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := ff.filters()
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				st, err := a.store.Studies.GetByID(ctx, study)
				if err != nil {
					return err
				}
				agg, err := a.metrics.StudyMetrics(ctx, study, filters)
				if err != nil {
					return err
				}
				doc := report.Build(st, agg, filters, commentary)

				w := os.Stdout
				if out != "" {
					f, err := os.Create(out)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				if err := report.Write(w, doc); err != nil {
					return err
				}
				if out != "" {
					fmt.Printf("Report written to %s\n", out)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&study, "study", "", "study id")
	cmd.Flags().StringVar(&commentary, "commentary", "", "free-text commentary to embed")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("study")
	ff.register(cmd, "")
	return cmd
}
