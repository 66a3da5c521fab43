package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"uxmetrics/internal/models"
)

func personCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "person", Short: "Manage participants, facilitators, and observers"}
	cmd.AddCommand(personAddCmd())
	cmd.AddCommand(personListCmd())
	cmd.AddCommand(personRemoveCmd())
	return cmd
}

func personAddCmd() *cobra.Command {
	var name, role string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				person := &models.Person{Name: name, Role: models.PersonRole(role)}
				if err := a.store.People.Create(ctx, person); err != nil {
					return err
				}
				return printResult(person, func() {
					fmt.Printf("Added %s %s (%s)\n", person.Role, person.Name, person.ID)
				})
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", "", "participant, facilitator, or observer")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func personListCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				people, err := a.store.People.List(ctx, models.PersonRole(role))
				if err != nil {
					return err
				}
				return printResult(people, func() {
					t := newTable(table.Row{"ID", "Name", "Role"})
					for _, p := range people {
						t.AppendRow(table.Row{p.ID, p.Name, p.Role})
					}
					t.Render()
				})
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "filter by role")
	return cmd
}

func personRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a person (blocked while referenced by sessions)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				return a.store.People.Delete(ctx, args[0])
			})
		},
	}
	return cmd
}
