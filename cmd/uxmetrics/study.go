package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"uxmetrics/internal/models"
)

func studyCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "study", Short: "Manage studies"}
	cmd.AddCommand(studyCreateCmd())
	cmd.AddCommand(studyListCmd())
	cmd.AddCommand(studyShowCmd())
	cmd.AddCommand(studyRenameCmd())
	cmd.AddCommand(studyArchiveCmd(true))
	cmd.AddCommand(studyArchiveCmd(false))
	return cmd
}

func studyCreateCmd() *cobra.Command {
	var name, product, feature string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a study",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				study := &models.Study{Name: name, ProductID: product, FeatureID: feature}
				if err := a.store.Studies.Create(ctx, study); err != nil {
					return err
				}
				return printResult(study, func() {
					fmt.Printf("Created study %s (%s)\n", study.Name, study.ID)
				})
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "study name")
	cmd.Flags().StringVar(&product, "product", "", "product identifier")
	cmd.Flags().StringVar(&feature, "feature", "", "feature identifier")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

func studyListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List studies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				studies, err := a.store.Studies.List(ctx, all)
				if err != nil {
					return err
				}
				return printResult(studies, func() {
					t := newTable(table.Row{"ID", "Name", "Product", "Feature", "Archived", "Created"})
					for _, s := range studies {
						t.AppendRow(table.Row{s.ID, s.Name, s.ProductID, s.FeatureID, s.Archived, s.CreatedAt.Format("2006-01-02")})
					}
					t.Render()
				})
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include archived studies")
	return cmd
}

func studyShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				study, err := a.store.Studies.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(study)
			})
		},
	}
	return cmd
}

func studyRenameCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "rename <id>",
		Short: "Rename a study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				study, err := a.store.Studies.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				study.Name = name
				return a.store.Studies.Update(ctx, study)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new study name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func studyArchiveCmd(archive bool) *cobra.Command {
	use, short := "archive <id>", "Archive a study"
	if !archive {
		use, short = "unarchive <id>", "Restore an archived study"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				return a.store.Studies.SetArchived(ctx, args[0], archive)
			})
		},
	}
	return cmd
}
