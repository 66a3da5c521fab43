package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"uxmetrics/internal/capture"
	"uxmetrics/internal/models"
)

func responseCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "response", Short: "Record assessment responses"}
	cmd.AddCommand(responseSuccessCmd())
	cmd.AddCommand(responseTimeCmd())
	cmd.AddCommand(responseEfficiencyCmd())
	cmd.AddCommand(responseErrorsCmd())
	cmd.AddCommand(responseSEQCmd())
	return cmd
}

// recordResponse resolves the instrument, builds the response via build,
// and persists it.
func recordResponse(cmd *cobra.Command, kind models.AssessmentKind, build func(typeID string) *models.AssessmentResponse) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		at, err := a.store.Types.ByKind(ctx, kind)
		if err != nil {
			return fmt.Errorf("instrument %s is not defined: %w", kind, err)
		}
		resp := build(at.ID)
		if err := a.store.Responses.Record(ctx, resp); err != nil {
			return err
		}
		return printResult(resp, func() {
			fmt.Printf("Recorded %s response %s\n", at.Name, resp.ID)
		})
	})
}

func responseSuccessCmd() *cobra.Command {
	var session, task string
	var successful bool
	cmd := &cobra.Command{
		Use:   "success",
		Short: "Record a task success outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordResponse(cmd, models.KindTaskSuccessRate, func(typeID string) *models.AssessmentResponse {
				return capture.TaskSuccess(session, typeID, task, successful)
			})
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session id")
	cmd.Flags().StringVar(&task, "task", "", "task description")
	cmd.Flags().BoolVar(&successful, "successful", false, "attempt was successful")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func responseTimeCmd() *cobra.Command {
	var session, task string
	var seconds float64
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Record time on task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordResponse(cmd, models.KindTimeOnTask, func(typeID string) *models.AssessmentResponse {
				return capture.TimeOnTask(session, typeID, task, seconds)
			})
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session id")
	cmd.Flags().StringVar(&task, "task", "", "task description")
	cmd.Flags().Float64Var(&seconds, "seconds", 0, "elapsed seconds")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("seconds")
	return cmd
}

func responseEfficiencyCmd() *cobra.Command {
	var session, task string
	var optimal, actual int
	cmd := &cobra.Command{
		Use:   "efficiency",
		Short: "Record task efficiency (optimal vs actual steps)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordResponse(cmd, models.KindTaskEfficiency, func(typeID string) *models.AssessmentResponse {
				return capture.Efficiency(session, typeID, task, optimal, actual)
			})
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session id")
	cmd.Flags().StringVar(&task, "task", "", "task description")
	cmd.Flags().IntVar(&optimal, "optimal", 0, "optimal step count")
	cmd.Flags().IntVar(&actual, "actual", 0, "actual step count")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("optimal")
	_ = cmd.MarkFlagRequired("actual")
	return cmd
}

func responseErrorsCmd() *cobra.Command {
	var session, task string
	var errCount, opportunities int
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Record an error rate observation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordResponse(cmd, models.KindErrorRate, func(typeID string) *models.AssessmentResponse {
				return capture.ErrorRate(session, typeID, task, errCount, opportunities)
			})
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session id")
	cmd.Flags().StringVar(&task, "task", "", "task description")
	cmd.Flags().IntVar(&errCount, "errors", 0, "errors observed")
	cmd.Flags().IntVar(&opportunities, "opportunities", 0, "error opportunities")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("errors")
	_ = cmd.MarkFlagRequired("opportunities")
	return cmd
}

func responseSEQCmd() *cobra.Command {
	var session, task string
	var rating int
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Record a Single Ease Question rating (1-7)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordResponse(cmd, models.KindSEQ, func(typeID string) *models.AssessmentResponse {
				return capture.SEQ(session, typeID, task, rating)
			})
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session id")
	cmd.Flags().StringVar(&task, "task", "", "task description")
	cmd.Flags().IntVar(&rating, "rating", 0, "ease rating, 1 (hard) to 7 (easy)")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}
