package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"uxmetrics/internal/analytics"
	"uxmetrics/internal/capture"
	"uxmetrics/internal/database"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"
)

// The store is the analytics layer's data source.
var _ analytics.Source = (*repository.Store)(nil)

func openTestStore(t *testing.T) *repository.Store {
	t.Helper()
	log := zap.NewNop()
	db, err := database.Open(":memory:", log)
	require.NoError(t, err)
	require.NoError(t, database.SeedAssessmentTypes(db, models.DefaultInstruments(), log))
	return repository.New(db, log)
}

func createStudy(t *testing.T, store *repository.Store) *models.Study {
	t.Helper()
	study := &models.Study{Name: "Onboarding", ProductID: "app"}
	require.NoError(t, store.Studies.Create(context.Background(), study))
	return study
}

func createPerson(t *testing.T, store *repository.Store, name string, role models.PersonRole) *models.Person {
	t.Helper()
	p := &models.Person{Name: name, Role: role}
	require.NoError(t, store.People.Create(context.Background(), p))
	return p
}

func startSession(t *testing.T, store *repository.Store, study *models.Study, participant, facilitator *models.Person) *models.Session {
	t.Helper()
	s := &models.Session{
		StudyID:       study.ID,
		ParticipantID: participant.ID,
		FacilitatorID: facilitator.ID,
	}
	require.NoError(t, store.Sessions.Start(context.Background(), s))
	return s
}

func TestStudyCreateAssignsUniqueIDs(t *testing.T) {
	store := openTestStore(t)
	a := createStudy(t, store)
	b := createStudy(t, store)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStudyArchiveRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)

	require.NoError(t, store.Studies.SetArchived(ctx, study.ID, true))
	active, err := store.Studies.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := store.Studies.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPersonCreateRejectsUnknownRole(t *testing.T) {
	store := openTestStore(t)
	err := store.People.Create(context.Background(), &models.Person{Name: "X", Role: "pilot"})
	assert.ErrorIs(t, err, repository.ErrInvalidRole)
}

func TestPersonDeleteBlockedWhileReferenced(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	participant := createPerson(t, store, "Pat", models.RoleParticipant)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)
	observer := createPerson(t, store, "Obie", models.RoleObserver)

	session := &models.Session{
		StudyID:       study.ID,
		ParticipantID: participant.ID,
		FacilitatorID: facilitator.ID,
		ObserverIDs:   []string{observer.ID},
	}
	require.NoError(t, store.Sessions.Start(ctx, session))

	assert.ErrorIs(t, store.People.Delete(ctx, participant.ID), repository.ErrPersonReferenced)
	assert.ErrorIs(t, store.People.Delete(ctx, facilitator.ID), repository.ErrPersonReferenced)
	assert.ErrorIs(t, store.People.Delete(ctx, observer.ID), repository.ErrPersonReferenced)

	unreferenced := createPerson(t, store, "Uma", models.RoleParticipant)
	assert.NoError(t, store.People.Delete(ctx, unreferenced.ID))
}

func TestSessionStartRequiresKnownReferences(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)

	err := store.Sessions.Start(ctx, &models.Session{
		StudyID:       study.ID,
		ParticipantID: "nope",
		FacilitatorID: facilitator.ID,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionCompleteStampsTimestamp(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	participant := createPerson(t, store, "Pat", models.RoleParticipant)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)
	session := startSession(t, store, study, participant, facilitator)

	assert.Equal(t, models.SessionInProgress, session.Status)
	assert.Nil(t, session.CompletedAt)

	done := time.Now()
	require.NoError(t, store.Sessions.Complete(ctx, session.ID, done))

	got, err := store.Sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, done, *got.CompletedAt, time.Second)
}

func TestRecordSEQEnforcesRangeAndDuplicates(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	participant := createPerson(t, store, "Pat", models.RoleParticipant)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)
	session := startSession(t, store, study, participant, facilitator)

	seqType, err := store.Types.ByKind(ctx, models.KindSEQ)
	require.NoError(t, err)

	err = store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "Checkout", 9))
	assert.ErrorIs(t, err, repository.ErrValueOutOfRange)

	require.NoError(t, store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "Checkout", 5)))

	// The duplicate key is exact lowercase equality of the trimmed task.
	err = store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "  CHECKOUT ", 3))
	assert.ErrorIs(t, err, repository.ErrDuplicateSEQTask)

	// A different task description in the same session is fine.
	assert.NoError(t, store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "Checkout again", 3)))
}

func TestRecordSEQDuplicateCheckFoldsNonASCII(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	participant := createPerson(t, store, "Pat", models.RoleParticipant)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)
	session := startSession(t, store, study, participant, facilitator)

	seqType, err := store.Types.ByKind(ctx, models.KindSEQ)
	require.NoError(t, err)

	require.NoError(t, store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "Überweisung", 5)))

	// Case folding covers the full alphabet, not just ASCII.
	err = store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "überweisung", 3))
	assert.ErrorIs(t, err, repository.ErrDuplicateSEQTask)
}

func TestRecordSEQRangeCheckReadsScannedNumbers(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	participant := createPerson(t, store, "Pat", models.RoleParticipant)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)
	session := startSession(t, store, study, participant, facilitator)

	seqType, err := store.Types.ByKind(ctx, models.KindSEQ)
	require.NoError(t, err)

	// Responses re-imported from an archive carry json.Number values; the
	// range check must still see them.
	err = store.Responses.Record(ctx, &models.AssessmentResponse{
		SessionID:        session.ID,
		AssessmentTypeID: seqType.ID,
		TaskDescription:  "Checkout",
		RawAnswers:       datatypes.JSONMap{"rating": json.Number("9")},
		Metrics:          datatypes.JSONMap{"seqRating": json.Number("9")},
	})
	assert.ErrorIs(t, err, repository.ErrValueOutOfRange)
}

func TestRecordErrorRateIsPermissive(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	participant := createPerson(t, store, "Pat", models.RoleParticipant)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)
	session := startSession(t, store, study, participant, facilitator)

	errType, err := store.Types.ByKind(ctx, models.KindErrorRate)
	require.NoError(t, err)

	// More errors than opportunities is accepted as given.
	assert.NoError(t, store.Responses.Record(ctx, capture.ErrorRate(session.ID, errType.ID, "Search", 9, 4)))
}

func TestRecordRejectsUnknownSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seqType, err := store.Types.ByKind(ctx, models.KindSEQ)
	require.NoError(t, err)

	err = store.Responses.Record(ctx, capture.SEQ("missing", seqType.ID, "Checkout", 5))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreSourceContract(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// Unknown studies and sessions read back empty, never error.
	sessions, err := store.SessionsForStudy(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, sessions)

	responses, err := store.ResponsesForSession(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, responses)

	at, err := store.TypeByKind(ctx, models.KindTimeOnTask)
	require.NoError(t, err)
	require.NotNil(t, at)
	assert.Equal(t, "durationSeconds", at.MetricKey)
}

// Values stored through the repository must still extract after the JSON
// columns are scanned back, where numbers arrive as json.Number.
func TestRecordedValuesSurviveDatabaseRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	study := createStudy(t, store)
	participant := createPerson(t, store, "Pat", models.RoleParticipant)
	facilitator := createPerson(t, store, "Fran", models.RoleFacilitator)
	session := startSession(t, store, study, participant, facilitator)

	timeType, err := store.Types.ByKind(ctx, models.KindTimeOnTask)
	require.NoError(t, err)
	effType, err := store.Types.ByKind(ctx, models.KindTaskEfficiency)
	require.NoError(t, err)
	seqType, err := store.Types.ByKind(ctx, models.KindSEQ)
	require.NoError(t, err)

	require.NoError(t, store.Responses.Record(ctx, capture.TimeOnTask(session.ID, timeType.ID, "Checkout", 92.5)))
	require.NoError(t, store.Responses.Record(ctx, capture.Efficiency(session.ID, effType.ID, "Checkout", 5, 8)))
	require.NoError(t, store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "Checkout", 6)))

	responses, err := store.ResponsesForSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, responses, 3)

	assert.Equal(t, []float64{92.5}, analytics.ExtractValues(responses, models.KindTimeOnTask))
	assert.Equal(t, []float64{62.5}, analytics.ExtractValues(responses, models.KindTaskEfficiency))
	assert.Equal(t, []float64{6}, analytics.ExtractValues(responses, models.KindSEQ))
}
