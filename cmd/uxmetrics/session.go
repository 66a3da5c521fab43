package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"uxmetrics/internal/models"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "session", Short: "Manage evaluation sessions"}
	cmd.AddCommand(sessionStartCmd())
	cmd.AddCommand(sessionCompleteCmd())
	cmd.AddCommand(sessionListCmd())
	return cmd
}

func sessionStartCmd() *cobra.Command {
	var study, participant, facilitator string
	var observers []string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				session := &models.Session{
					StudyID:       study,
					ParticipantID: participant,
					FacilitatorID: facilitator,
					ObserverIDs:   observers,
				}
				if err := a.store.Sessions.Start(ctx, session); err != nil {
					return err
				}
				return printResult(session, func() {
					fmt.Printf("Started session %s\n", session.ID)
				})
			})
		},
	}
	cmd.Flags().StringVar(&study, "study", "", "study id")
	cmd.Flags().StringVar(&participant, "participant", "", "participant id")
	cmd.Flags().StringVar(&facilitator, "facilitator", "", "facilitator id")
	cmd.Flags().StringSliceVar(&observers, "observer", nil, "observer id (repeatable)")
	_ = cmd.MarkFlagRequired("study")
	_ = cmd.MarkFlagRequired("participant")
	_ = cmd.MarkFlagRequired("facilitator")
	return cmd
}

func sessionCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a session completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				return a.store.Sessions.Complete(ctx, args[0], time.Now())
			})
		},
	}
	return cmd
}

func sessionListCmd() *cobra.Command {
	var study string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions in a study",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				sessions, err := a.store.Sessions.ListByStudy(ctx, study)
				if err != nil {
					return err
				}
				return printResult(sessions, func() {
					t := newTable(table.Row{"ID", "Participant", "Status", "Created", "Completed"})
					for _, s := range sessions {
						t.AppendRow(table.Row{s.ID, s.ParticipantID, s.Status, s.CreatedAt.Format("2006-01-02 15:04"), fmtTime(s.CompletedAt)})
					}
					t.Render()
				})
			})
		},
	}
	cmd.Flags().StringVar(&study, "study", "", "study id")
	_ = cmd.MarkFlagRequired("study")
	return cmd
}
