// Package seed fills an empty workspace with a plausible demo dataset.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"uxmetrics/internal/capture"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"
)

var demoTasks = []string{
	"Find a product using search",
	"Add an item to the cart",
	"Complete checkout as a guest",
	"Locate the returns policy",
}

// Run creates a demo study with participants, sessions, and responses for
// all five instruments. The generator is seeded, so repeated runs over a
// fresh workspace produce the same dataset.
func Run(ctx context.Context, store *repository.Store, log *zap.Logger) error {
	rng := rand.New(rand.NewSource(42))

	study := &models.Study{
		Name:      "Checkout Redesign Baseline",
		ProductID: "webstore",
		FeatureID: "checkout-v2",
	}
	if err := store.Studies.Create(ctx, study); err != nil {
		return fmt.Errorf("seed study: %w", err)
	}

	facilitator := &models.Person{Name: "Dana Reyes", Role: models.RoleFacilitator}
	if err := store.People.Create(ctx, facilitator); err != nil {
		return err
	}
	observer := &models.Person{Name: "Sam Okafor", Role: models.RoleObserver}
	if err := store.People.Create(ctx, observer); err != nil {
		return err
	}

	participantNames := []string{"Alex Chen", "Priya Nair", "Jordan Blake", "Mia Torres"}
	participants := make([]*models.Person, 0, len(participantNames))
	for _, name := range participantNames {
		p := &models.Person{Name: name, Role: models.RoleParticipant}
		if err := store.People.Create(ctx, p); err != nil {
			return err
		}
		participants = append(participants, p)
	}

	types := make(map[models.AssessmentKind]string)
	for _, kind := range models.AllKinds() {
		at, err := store.Types.ByKind(ctx, kind)
		if err != nil {
			return fmt.Errorf("seed requires instrument %s: %w", kind, err)
		}
		types[kind] = at.ID
	}

	start := time.Now().AddDate(0, 0, -len(participants))
	for i, participant := range participants {
		session := &models.Session{
			StudyID:       study.ID,
			ParticipantID: participant.ID,
			FacilitatorID: facilitator.ID,
			ObserverIDs:   []string{observer.ID},
			CreatedAt:     start.AddDate(0, 0, i),
		}
		if err := store.Sessions.Start(ctx, session); err != nil {
			return err
		}

		for _, task := range demoTasks {
			responses := []*models.AssessmentResponse{
				capture.TaskSuccess(session.ID, types[models.KindTaskSuccessRate], task, rng.Intn(100) < 75),
				capture.TimeOnTask(session.ID, types[models.KindTimeOnTask], task, 30+rng.Float64()*150),
				capture.Efficiency(session.ID, types[models.KindTaskEfficiency], task, 5, 5+rng.Intn(5)),
				capture.ErrorRate(session.ID, types[models.KindErrorRate], task, rng.Intn(3), 8),
				capture.SEQ(session.ID, types[models.KindSEQ], task, 3+rng.Intn(5)),
			}
			for _, resp := range responses {
				if err := store.Responses.Record(ctx, resp); err != nil {
					return err
				}
			}
		}

		if err := store.Sessions.Complete(ctx, session.ID, session.CreatedAt.Add(45*time.Minute)); err != nil {
			return err
		}
	}

	log.Info("Demo data seeded",
		zap.String("study", study.ID),
		zap.Int("participants", len(participants)),
		zap.Int("tasks", len(demoTasks)),
	)
	return nil
}
