package impl

import (
	"context"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/infra/persistence/memory"
	"tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statusServiceFixtures holds all test dependencies for status service tests.
type statusServiceFixtures struct {
	service usecase.StatusUsecase
}

func createTestStatusService(t *testing.T, candidates ...*entity.Candidate) statusServiceFixtures {
	t.Helper()
	repo := memory.NewCandidateRepository()
	require.NoError(t, repo.Seed(context.Background(), candidates))

	return statusServiceFixtures{service: NewStatusService(repo)}
}

func testCandidate(id, name, initials string) *entity.Candidate {
	return &entity.Candidate{
		ID:       id,
		Name:     name,
		Initials: initials,
		Role:     "Engineer",
		Stage:    entity.StageReceived,
		Channel:  entity.ChannelEmail,
		Timeline: []entity.TimelineEntry{
			{Stage: entity.StageReceived, Timestamp: time.Now()},
		},
	}
}

func TestStatusService_ListCandidates(t *testing.T) {
	fx := createTestStatusService(t,
		testCandidate("cand-001", "Jordan R.", "JR"),
		testCandidate("cand-002", "Priya N.", "PN"),
	)

	projections, err := fx.service.ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, projections, 2)
	assert.Equal(t, "Jordan R.", projections[0].Name)
	assert.Equal(t, "cand-002", projections[1].ID)
}

func TestStatusService_GetCandidate(t *testing.T) {
	fx := createTestStatusService(t, testCandidate("cand-001", "Jordan R.", "JR"))

	status, err := fx.service.GetCandidate(context.Background(), "cand-001")
	require.NoError(t, err)
	assert.Equal(t, "cand-001", status.Candidate.ID)
	assert.Equal(t, entity.StageReceived, status.Candidate.Stage)
	assert.Len(t, status.Timeline, 1)
}

func TestStatusService_GetCandidate_NotFound(t *testing.T) {
	fx := createTestStatusService(t, testCandidate("cand-001", "Jordan R.", "JR"))

	status, err := fx.service.GetCandidate(context.Background(), "cand-404")
	assert.ErrorIs(t, err, domainerrors.ErrCandidateNotFound)
	assert.Nil(t, status)
}

func TestStatusService_UpdateStage_RoundTrip(t *testing.T) {
	fx := createTestStatusService(t, testCandidate("cand-001", "Jordan R.", "JR"))
	ctx := context.Background()

	require.NoError(t, fx.service.UpdateStage(ctx, "cand-001", "offer"))

	status, err := fx.service.GetCandidate(ctx, "cand-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StageOffer, status.Candidate.Stage)
	require.Len(t, status.Timeline, 2)
	assert.Equal(t, entity.StageOffer, status.Timeline[1].Stage)
}

func TestStatusService_UpdateStage_InvalidOrMissingStage(t *testing.T) {
	fx := createTestStatusService(t, testCandidate("cand-001", "Jordan R.", "JR"))
	ctx := context.Background()

	for _, stage := range []string{"", "archived", "Offer"} {
		err := fx.service.UpdateStage(ctx, "cand-001", stage)
		assert.ErrorIs(t, err, domainerrors.ErrMissingStage, "stage %q", stage)
	}

	// Nothing moved.
	status, err := fx.service.GetCandidate(ctx, "cand-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StageReceived, status.Candidate.Stage)
	assert.Len(t, status.Timeline, 1)
}

func TestStatusService_UpdateStage_UnknownCandidate(t *testing.T) {
	fx := createTestStatusService(t, testCandidate("cand-001", "Jordan R.", "JR"))

	err := fx.service.UpdateStage(context.Background(), "cand-404", "offer")
	assert.ErrorIs(t, err, domainerrors.ErrCandidateNotFound)
}
