package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCandidate(id string) *entity.Candidate {
	return &entity.Candidate{
		ID:       id,
		Name:     "Jordan R.",
		Initials: "JR",
		Role:     "Engineer",
		Stage:    entity.StageReceived,
		Channel:  entity.ChannelEmail,
		Timeline: []entity.TimelineEntry{
			{Stage: entity.StageReceived, Timestamp: time.Now()},
		},
	}
}

func TestCandidateRepository_SeedAndFind(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{seededCandidate("cand-001")}))

	candidate, err := repo.FindByID(ctx, "cand-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StageReceived, candidate.Stage)
	assert.Len(t, candidate.Timeline, 1)

	_, err = repo.FindByID(ctx, "cand-unknown")
	assert.ErrorIs(t, err, repository.ErrCandidateNotFound)
}

func TestCandidateRepository_SeedRejectsMalformed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		c := seededCandidate("")
		assert.Error(t, NewCandidateRepository().Seed(ctx, []*entity.Candidate{c}))
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := NewCandidateRepository().Seed(ctx, []*entity.Candidate{
			seededCandidate("cand-001"),
			seededCandidate("cand-001"),
		})
		assert.Error(t, err)
	})

	t.Run("empty timeline", func(t *testing.T) {
		c := seededCandidate("cand-001")
		c.Timeline = nil
		assert.Error(t, NewCandidateRepository().Seed(ctx, []*entity.Candidate{c}))
	})
}

func TestCandidateRepository_UpdateStage(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{seededCandidate("cand-001")}))

	require.NoError(t, repo.UpdateStage(ctx, "cand-001", entity.StageOffer))

	candidate, err := repo.FindByID(ctx, "cand-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StageOffer, candidate.Stage)
	require.Len(t, candidate.Timeline, 2)
	assert.Equal(t, entity.StageOffer, candidate.Timeline[1].Stage)
}

func TestCandidateRepository_UpdateStage_InvalidStage(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{seededCandidate("cand-001")}))

	err := repo.UpdateStage(ctx, "cand-001", entity.Stage("archived"))
	assert.ErrorIs(t, err, repository.ErrInvalidStage)

	// Record and timeline unchanged.
	candidate, err := repo.FindByID(ctx, "cand-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StageReceived, candidate.Stage)
	assert.Len(t, candidate.Timeline, 1)
}

func TestCandidateRepository_UpdateStage_UnknownID(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{seededCandidate("cand-001")}))

	err := repo.UpdateStage(ctx, "cand-999", entity.StageOffer)
	assert.ErrorIs(t, err, repository.ErrCandidateNotFound)
}

func TestCandidateRepository_TransitionPolicy(t *testing.T) {
	// Forward-only policy: rejected is terminal.
	noLeavingRejected := func(from, to entity.Stage) bool {
		return from != entity.StageRejected
	}
	repo := NewCandidateRepositoryWithPolicy(noLeavingRejected)
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{seededCandidate("cand-001")}))

	require.NoError(t, repo.UpdateStage(ctx, "cand-001", entity.StageRejected))

	err := repo.UpdateStage(ctx, "cand-001", entity.StageReceived)
	assert.ErrorIs(t, err, repository.ErrTransitionDenied)
}

func TestCandidateRepository_ListAll(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	first := seededCandidate("cand-001")
	second := seededCandidate("cand-002")
	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{first, second}))

	projections, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, projections, 2)

	// Seed order preserved, timeline excluded from the projection shape.
	assert.Equal(t, "cand-001", projections[0].ID)
	assert.Equal(t, "cand-002", projections[1].ID)
}

func TestCandidateRepository_FindByID_ReturnsCopy(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{seededCandidate("cand-001")}))

	candidate, err := repo.FindByID(ctx, "cand-001")
	require.NoError(t, err)

	// Mutating the returned record must not corrupt the store.
	candidate.Stage = entity.StageRejected
	candidate.Timeline = append(candidate.Timeline, entity.TimelineEntry{Stage: entity.StageRejected})

	fresh, err := repo.FindByID(ctx, "cand-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StageReceived, fresh.Stage)
	assert.Len(t, fresh.Timeline, 1)
}

func TestCandidateRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, []*entity.Candidate{seededCandidate("cand-001")}))

	const updates = 50
	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		stage := entity.Stages[i%len(entity.Stages)]
		go func() {
			defer wg.Done()
			_ = repo.UpdateStage(ctx, "cand-001", stage)
		}()
	}
	wg.Wait()

	candidate, err := repo.FindByID(ctx, "cand-001")
	require.NoError(t, err)

	// The timeline grew one entry per update, and its last entry agrees
	// with the current stage regardless of interleaving.
	assert.Len(t, candidate.Timeline, 1+updates)
	assert.Equal(t, candidate.Stage, candidate.Timeline[len(candidate.Timeline)-1].Stage)
}
