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

func TestWaitlists_CRUD(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlists()

	ctx := context.Background()

	id, err := ws.AddWaitlist(ctx, &entity.WaitlistInsert{
		Name:        "Beta",
		Slug:        "beta",
		DoubleOptIn: true,
		CustomFields: entity.CustomFields{
			{Key: "company", Label: "Company", Type: entity.FieldTypeText, Required: true},
		},
		AllowedOrigins: entity.AllowedOrigins{"*.example.com"},
	})
	require.NoError(t, err)

	w, err := ws.GetWaitlistBySlug(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, id, w.Id)
	assert.Equal(t, "Beta", w.Name)
	assert.True(t, w.DoubleOptIn)
	require.Len(t, w.CustomFields, 1)
	assert.Equal(t, "company", w.CustomFields[0].Key)
	assert.Equal(t, entity.AllowedOrigins{"*.example.com"}, w.AllowedOrigins)

	// slug is unique
	_, err = ws.AddWaitlist(ctx, &entity.WaitlistInsert{Name: "Other", Slug: "beta"})
	require.Error(t, err)
	e, ok := gerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "ALREADY_EXISTS", e.Code)

	err = ws.UpdateWaitlist(ctx, id, &entity.WaitlistInsert{
		Name: "Beta v2",
		Slug: "beta-v2",
	})
	require.NoError(t, err)

	_, err = ws.GetWaitlistBySlug(ctx, "beta")
	assert.True(t, errors.Is(err, gerr.ErrWaitlistNotFound))

	w, err = ws.GetWaitlistBySlug(ctx, "beta-v2")
	require.NoError(t, err)
	assert.Equal(t, "Beta v2", w.Name)

	all, err := ws.ListWaitlists(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	err = ws.DeleteWaitlistById(ctx, id)
	require.NoError(t, err)

	err = ws.DeleteWaitlistById(ctx, id)
	assert.True(t, errors.Is(err, gerr.ErrWaitlistNotFound))
}

func TestWaitlists_DeleteCascadesSignups(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	ctx := context.Background()

	id, err := db.Waitlists().AddWaitlist(ctx, &entity.WaitlistInsert{Name: "Drop", Slug: "drop"})
	require.NoError(t, err)

	_, err = db.Signups().AddSignup(ctx, &entity.SignupInsert{
		WaitlistId: id,
		Email:      "a@example.com",
		Status:     entity.StatusConfirmed,
		Confirmed:  true,
	})
	require.NoError(t, err)

	err = db.Waitlists().DeleteWaitlistById(ctx, id)
	require.NoError(t, err)

	s, err := db.Signups().GetSignupByEmail(ctx, id, "a@example.com")
	require.NoError(t, err)
	assert.Nil(t, s)
}
