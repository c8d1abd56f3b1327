package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/waitlist-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFire(t *testing.T) {
	var (
		gotEvent    string
		gotDelivery string
		gotPayload  payload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEvent = r.Header.Get("X-Webhook-Event")
		gotDelivery = r.Header.Get("X-Delivery-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := New(&Config{HTTPTimeout: time.Second})

	wl := &entity.Waitlist{Id: 1, Name: "Beta", Slug: "beta"}
	s := &entity.Signup{
		Id:       7,
		Email:    "a@example.com",
		Position: 3,
		Status:   entity.StatusConfirmed,
	}

	err := d.Fire(context.Background(), srv.URL, EventSignupCreated, wl, s)
	require.NoError(t, err)

	assert.Equal(t, EventSignupCreated, gotEvent)
	assert.NotEmpty(t, gotDelivery)
	assert.Equal(t, EventSignupCreated, gotPayload.Event)
	assert.Equal(t, "beta", gotPayload.Waitlist.Slug)
	assert.Equal(t, "a@example.com", gotPayload.Signup.Email)
	assert.Equal(t, 3, gotPayload.Signup.Position)
}

func TestFire_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := New(&Config{})
	err := d.Fire(context.Background(), srv.URL, EventSignupConfirmed,
		&entity.Waitlist{Id: 1}, &entity.Signup{Id: 1})
	assert.Error(t, err)
}

func TestFire_Unreachable(t *testing.T) {
	d := New(&Config{HTTPTimeout: 200 * time.Millisecond})
	err := d.Fire(context.Background(), "http://127.0.0.1:1/hook", EventSignupCreated,
		&entity.Waitlist{Id: 1}, &entity.Signup{Id: 1})
	assert.Error(t, err)
}
