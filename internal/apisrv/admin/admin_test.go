package admin

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/waitlist-manager/internal/dependency/mocks"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	rep *mocks.Repository
	wm  *mocks.Waitlists
	sm  *mocks.Signups
	srv *Server
}

func newTestEnv(t *testing.T) *testEnv {
	e := &testEnv{
		rep: mocks.NewRepository(t),
		wm:  mocks.NewWaitlists(t),
		sm:  mocks.NewSignups(t),
	}
	e.rep.On("Waitlists").Return(e.wm).Maybe()
	e.rep.On("Signups").Return(e.sm).Maybe()
	e.srv = New(e.rep)
	return e
}

func TestCreateWaitlist_Validation(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)

	_, err := e.srv.CreateWaitlist(ctx, &entity.WaitlistInsert{Name: "Beta"})
	assert.Error(t, err)

	_, err = e.srv.CreateWaitlist(ctx, &entity.WaitlistInsert{Name: "Beta", Slug: "Not A Slug"})
	require.Error(t, err)
	ge, ok := gerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", ge.Code)

	_, err = e.srv.CreateWaitlist(ctx, &entity.WaitlistInsert{
		Name: "Beta",
		Slug: "beta",
		CustomFields: entity.CustomFields{
			{Key: "choice", Label: "Choice", Type: entity.FieldTypeSelect},
		},
	})
	assert.Error(t, err, "select field without options must fail")
}

func TestCreateWaitlist(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)

	e.wm.On("AddWaitlist", ctx, mock.MatchedBy(func(wi *entity.WaitlistInsert) bool {
		return wi.Slug == "beta-launch"
	})).Return(3, nil)
	e.wm.On("GetWaitlistById", ctx, 3).Return(&entity.Waitlist{Id: 3, Slug: "beta-launch"}, nil)

	w, err := e.srv.CreateWaitlist(ctx, &entity.WaitlistInsert{Name: " Beta ", Slug: " Beta-Launch "})
	require.NoError(t, err)
	assert.Equal(t, 3, w.Id)
}

func TestListSignups_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)

	e.wm.On("GetWaitlistById", ctx, 1).Return(&entity.Waitlist{Id: 1}, nil)
	e.sm.On("GetSignupsPaged", ctx, 1, mock.MatchedBy(func(f *entity.SignupListFilter) bool {
		return f.Limit == 100 && f.Offset == 200
	})).Return([]entity.Signup{}, 0, nil)

	page, err := e.srv.ListSignups(ctx, 1, &SignupListQuery{Page: 3, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 3, page.Page)
}

func TestListSignups_RejectsUnknownSort(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)

	e.wm.On("GetWaitlistById", ctx, 1).Return(&entity.Waitlist{Id: 1}, nil)

	_, err := e.srv.ListSignups(ctx, 1, &SignupListQuery{Sort: "ip_address"})
	assert.Error(t, err)

	_, err = e.srv.ListSignups(ctx, 1, &SignupListQuery{Status: "banned"})
	assert.Error(t, err)
}

func TestSetSignupStatus_WrongWaitlist(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)

	e.sm.On("GetSignupById", ctx, 9).Return(&entity.Signup{Id: 9, WaitlistId: 2}, nil)

	_, err := e.srv.SetSignupStatus(ctx, 1, 9, "invited")
	assert.True(t, errors.Is(err, gerr.ErrSignupNotFound))

	_, err = e.srv.SetSignupStatus(ctx, 1, 9, "banned")
	assert.Error(t, err)
}

func TestExportSignupsCSV(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)

	e.wm.On("GetWaitlistById", ctx, 1).Return(&entity.Waitlist{
		Id: 1,
		CustomFields: entity.CustomFields{
			{Key: "company", Label: "Company", Type: entity.FieldTypeText},
			{Key: "role", Label: "Role", Type: entity.FieldTypeText},
		},
	}, nil)
	e.sm.On("ListSignups", ctx, 1).Return([]entity.Signup{
		{
			Position:       1,
			Email:          "a@example.com",
			Status:         entity.StatusConfirmed,
			ReferralSource: sql.NullString{String: "twitter", Valid: true},
			CustomData:     entity.CustomData{"company": "Acme, Inc.", "role": "dev"},
			ConfirmedAt: sql.NullTime{
				Time:  time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC),
				Valid: true,
			},
			CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			Position:  2,
			Email:     "b@example.com",
			Status:    entity.StatusPending,
			CreatedAt: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, e.srv.ExportSignupsCSV(ctx, 1, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "position,email,status,referral_source,company,role,confirmed_at,created_at", lines[0])
	// comma in a field gets quoted
	assert.Contains(t, lines[1], `"Acme, Inc."`)
	assert.Contains(t, lines[1], "2024-06-02T12:00:00Z")
	// pending row has empty confirmed_at
	assert.Contains(t, lines[2], ",,")
}

func TestDeleteWaitlist(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)

	e.wm.On("DeleteWaitlistById", ctx, 4).Return(gerr.ErrWaitlistNotFound)
	err := e.srv.DeleteWaitlist(ctx, 4)
	assert.True(t, errors.Is(err, gerr.ErrWaitlistNotFound))
}
