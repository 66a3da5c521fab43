package exchange_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/capture"
	"uxmetrics/internal/database"
	"uxmetrics/internal/exchange"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"
)

func openWorkspace(t *testing.T) (*gorm.DB, *repository.Store) {
	t.Helper()
	log := zap.NewNop()
	db, err := database.Open(":memory:", log)
	require.NoError(t, err)
	require.NoError(t, database.SeedAssessmentTypes(db, models.DefaultInstruments(), log))
	return db, repository.New(db, log)
}

func populate(t *testing.T, store *repository.Store) {
	t.Helper()
	ctx := context.Background()

	study := &models.Study{Name: "Onboarding", ProductID: "app"}
	require.NoError(t, store.Studies.Create(ctx, study))
	participant := &models.Person{Name: "Pat", Role: models.RoleParticipant}
	require.NoError(t, store.People.Create(ctx, participant))
	facilitator := &models.Person{Name: "Fran", Role: models.RoleFacilitator}
	require.NoError(t, store.People.Create(ctx, facilitator))

	session := &models.Session{
		StudyID:       study.ID,
		ParticipantID: participant.ID,
		FacilitatorID: facilitator.ID,
	}
	require.NoError(t, store.Sessions.Start(ctx, session))

	seqType, err := store.Types.ByKind(ctx, models.KindSEQ)
	require.NoError(t, err)
	require.NoError(t, store.Responses.Record(ctx, capture.SEQ(session.ID, seqType.ID, "Sign up", 6)))
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	srcDB, srcStore := openWorkspace(t)
	populate(t, srcStore)

	archive, err := exchange.Export(ctx, srcDB)
	require.NoError(t, err)
	assert.Equal(t, exchange.FormatVersion, archive.Version)
	assert.Len(t, archive.Studies, 1)
	assert.Len(t, archive.People, 2)
	assert.Len(t, archive.Sessions, 1)
	assert.Len(t, archive.Responses, 1)

	var buf bytes.Buffer
	require.NoError(t, exchange.Write(&buf, archive))
	parsed, err := exchange.Read(&buf)
	require.NoError(t, err)

	dstDB, dstStore := openWorkspace(t)
	stats, err := exchange.Import(ctx, dstDB, parsed, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Studies)
	assert.Equal(t, 2, stats.People)
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 1, stats.Responses)
	assert.Equal(t, 0, stats.Skipped)

	studies, err := dstStore.Studies.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, studies, 1)
	assert.Equal(t, "Onboarding", studies[0].Name)

	// Importing the same archive again touches nothing.
	again, err := exchange.Import(ctx, dstDB, parsed, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Studies)
	assert.Equal(t, 5, again.Skipped)
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	_, err := exchange.Read(bytes.NewBufferString(`{"version":"99"}`))
	assert.Error(t, err)
}
