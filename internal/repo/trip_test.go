package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
	"github.com/plannerhq/backend/testutil"
)

// newTestRepos opens a transaction against the test database and returns
// trip and participant repos backed by that transaction. The transaction is
// rolled back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestRepos(t *testing.T) (repo.TripRepo, repo.ParticipantRepo) {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx), repo.NewParticipantRepo(tx)
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Floripa",
		StartsAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTripRepo_Create(t *testing.T) {
	trips, _ := newTestRepos(t)
	ctx := context.Background()

	input := tripFixture()
	got, err := trips.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartsAt.Equal(input.StartsAt), "StartsAt mismatch")
	assert.True(t, got.EndsAt.Equal(input.EndsAt), "EndsAt mismatch")
	assert.False(t, got.IsConfirmed, "new trips start unconfirmed")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestTripRepo_GetByID(t *testing.T) {
	trips, _ := newTestRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := trips.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Destination, got.Destination)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	trips, _ := newTestRepos(t)

	_, err := trips.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Confirm(t *testing.T) {
	trips, _ := newTestRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	changed, err := trips.Confirm(ctx, created.ID)

	require.NoError(t, err)
	assert.True(t, changed, "first confirmation should report a transition")

	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
}

func TestTripRepo_Confirm_AlreadyConfirmed(t *testing.T) {
	trips, _ := newTestRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	changed, err := trips.Confirm(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, changed)

	// Second call: no row matches the conditional update.
	changed, err = trips.Confirm(ctx, created.ID)

	require.NoError(t, err)
	assert.False(t, changed, "repeat confirmation must not report a transition")

	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed, "flag stays true")
}

func TestTripRepo_Confirm_NotFound(t *testing.T) {
	trips, _ := newTestRepos(t)

	_, err := trips.Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
