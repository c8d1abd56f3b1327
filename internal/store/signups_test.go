package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWaitlist(t *testing.T, db *MYSQLStore, slug string) int {
	t.Helper()
	id, err := db.Waitlists().AddWaitlist(context.Background(), &entity.WaitlistInsert{
		Name: slug,
		Slug: slug,
	})
	require.NoError(t, err)
	return id
}

func TestSignups_PositionsAreSequential(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ss := db.Signups()

	ctx := context.Background()
	wid := testWaitlist(t, db, "positions")

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		s, err := ss.AddSignup(ctx, &entity.SignupInsert{
			WaitlistId: wid,
			Email:      email,
			Status:     entity.StatusConfirmed,
			Confirmed:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, s.Position)
	}

	// duplicate email hits the unique index
	_, err := ss.AddSignup(ctx, &entity.SignupInsert{
		WaitlistId: wid,
		Email:      "a@example.com",
		Status:     entity.StatusConfirmed,
		Confirmed:  true,
	})
	assert.True(t, errors.Is(err, gerr.ErrAlreadySignedUp))
}

func TestSignups_ConfirmFlow(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ss := db.Signups()

	ctx := context.Background()
	wid := testWaitlist(t, db, "confirm")

	token := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	s, err := ss.AddSignup(ctx, &entity.SignupInsert{
		WaitlistId:        wid,
		Email:             "pending@example.com",
		Status:            entity.StatusPending,
		ConfirmationToken: token,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, s.Status)
	assert.False(t, s.ConfirmedAt.Valid)
	require.True(t, s.ConfirmationToken.Valid)

	found, err := ss.GetSignupByToken(ctx, wid, token)
	require.NoError(t, err)
	assert.Equal(t, s.Id, found.Id)

	confirmed, err := ss.ConfirmSignup(ctx, s.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, confirmed.Status)
	assert.True(t, confirmed.ConfirmedAt.Valid)
	assert.False(t, confirmed.ConfirmationToken.Valid)

	// token is single-use: a second lookup by the cleared token misses
	_, err = ss.GetSignupByToken(ctx, wid, token)
	assert.True(t, errors.Is(err, gerr.ErrNotFound))
}

func TestSignups_SetStatus(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ss := db.Signups()

	ctx := context.Background()
	wid := testWaitlist(t, db, "status")

	s, err := ss.AddSignup(ctx, &entity.SignupInsert{
		WaitlistId: wid,
		Email:      "x@example.com",
		Status:     entity.StatusPending,
	})
	require.NoError(t, err)

	inv, err := ss.SetSignupStatus(ctx, s.Id, entity.StatusInvited)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInvited, inv.Status)
	assert.True(t, inv.ConfirmedAt.Valid)

	// reset drops the confirmation stamp
	back, err := ss.SetSignupStatus(ctx, s.Id, entity.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, back.Status)
	assert.False(t, back.ConfirmedAt.Valid)
}

func TestSignups_Paged(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ss := db.Signups()

	ctx := context.Background()
	wid := testWaitlist(t, db, "paged")

	emails := []string{"anna@example.com", "ben@example.com", "carol@other.org"}
	for _, e := range emails {
		_, err := ss.AddSignup(ctx, &entity.SignupInsert{
			WaitlistId: wid,
			Email:      e,
			Status:     entity.StatusConfirmed,
			Confirmed:  true,
		})
		require.NoError(t, err)
	}

	page, total, err := ss.GetSignupsPaged(ctx, wid, &entity.SignupListFilter{
		Limit: 2,
		Sort:  "position",
		Order: "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "anna@example.com", page[0].Email)

	page, total, err = ss.GetSignupsPaged(ctx, wid, &entity.SignupListFilter{
		Search: "example.com",
		Limit:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, page, 2)

	count, err := ss.ActiveSignupCount(ctx, wid)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
