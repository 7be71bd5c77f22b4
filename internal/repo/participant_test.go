package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
)

// seedTrip creates a trip for participant tests to hang rows off.
func seedTrip(t *testing.T, trips repo.TripRepo) domain.Trip {
	t.Helper()
	trip, err := trips.Create(context.Background(), tripFixture())
	require.NoError(t, err)
	return trip
}

func TestParticipantRepo_Create(t *testing.T) {
	trips, participants := newTestRepos(t)
	ctx := context.Background()
	trip := seedTrip(t, trips)

	got, err := participants.Create(ctx, domain.Participant{
		Email:  "guest@example.com",
		TripID: trip.ID,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, "guest@example.com", got.Email)
	assert.Equal(t, trip.ID, got.TripID)
	assert.False(t, got.IsOwner, "invited participants are never owners")
	assert.False(t, got.IsConfirmed, "new participants start unconfirmed")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestParticipantRepo_GetByID_NotFound(t *testing.T) {
	_, participants := newTestRepos(t)

	_, err := participants.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepo_ListGuestsByTrip_ExcludesOwner(t *testing.T) {
	trips, participants := newTestRepos(t)
	ctx := context.Background()
	trip := seedTrip(t, trips)

	_, err := participants.Create(ctx, domain.Participant{
		Email:   "owner@example.com",
		TripID:  trip.ID,
		IsOwner: true,
	})
	require.NoError(t, err)

	guest, err := participants.Create(ctx, domain.Participant{
		Email:  "guest@example.com",
		TripID: trip.ID,
	})
	require.NoError(t, err)

	guests, err := participants.ListGuestsByTrip(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, guests, 1, "only the non-owner should be listed")
	assert.Equal(t, guest.ID, guests[0].ID)
	assert.Equal(t, "guest@example.com", guests[0].Email)
}

func TestParticipantRepo_ListByTrip_IncludesOwner(t *testing.T) {
	trips, participants := newTestRepos(t)
	ctx := context.Background()
	trip := seedTrip(t, trips)

	_, err := participants.Create(ctx, domain.Participant{
		Email:   "owner@example.com",
		TripID:  trip.ID,
		IsOwner: true,
	})
	require.NoError(t, err)
	_, err = participants.Create(ctx, domain.Participant{
		Email:  "guest@example.com",
		TripID: trip.ID,
	})
	require.NoError(t, err)

	all, err := participants.ListByTrip(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, all, 2)

	var emails []string
	for _, p := range all {
		emails = append(emails, p.Email)
	}
	assert.Contains(t, emails, "owner@example.com")
	assert.Contains(t, emails, "guest@example.com")
}

func TestParticipantRepo_ListByTrip_Empty(t *testing.T) {
	trips, participants := newTestRepos(t)
	ctx := context.Background()
	trip := seedTrip(t, trips)

	all, err := participants.ListByTrip(ctx, trip.ID)

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestParticipantRepo_Confirm(t *testing.T) {
	trips, participants := newTestRepos(t)
	ctx := context.Background()
	trip := seedTrip(t, trips)

	p, err := participants.Create(ctx, domain.Participant{
		Email:  "guest@example.com",
		TripID: trip.ID,
	})
	require.NoError(t, err)

	changed, err := participants.Confirm(ctx, p.ID)

	require.NoError(t, err)
	assert.True(t, changed, "first confirmation should report a transition")

	got, err := participants.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
}

func TestParticipantRepo_Confirm_AlreadyConfirmed(t *testing.T) {
	trips, participants := newTestRepos(t)
	ctx := context.Background()
	trip := seedTrip(t, trips)

	p, err := participants.Create(ctx, domain.Participant{
		Email:  "guest@example.com",
		TripID: trip.ID,
	})
	require.NoError(t, err)

	changed, err := participants.Confirm(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = participants.Confirm(ctx, p.ID)

	require.NoError(t, err)
	assert.False(t, changed, "repeat confirmation must not report a transition")
}

func TestParticipantRepo_Confirm_NotFound(t *testing.T) {
	_, participants := newTestRepos(t)

	_, err := participants.Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
