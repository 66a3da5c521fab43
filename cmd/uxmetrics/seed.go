package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"uxmetrics/internal/seed"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo study with sessions and responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := seed.Run(ctx, a.store, a.log); err != nil {
					return err
				}
				fmt.Println("Demo data created. Try: uxmetrics study list")
				return nil
			})
		},
	}
	return cmd
}
