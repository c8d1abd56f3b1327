package admin

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/waitlist-manager/internal/dependency/mocks"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveRange_Explicit(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	cur, prev, err := resolveRange(&StatsQuery{From: "2024-06-01", To: "2024-06-07"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), cur.From)
	// inclusive to-date: the window closes at the start of June 8
	assert.Equal(t, time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), cur.To)
	assert.Nil(t, prev)
}

func TestResolveRange_Compare(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	cur, prev, err := resolveRange(&StatsQuery{From: "2024-06-08", To: "2024-06-14", Compare: true}, now)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, cur.From, prev.To)
	assert.Equal(t, cur.To.Sub(cur.From), prev.To.Sub(prev.From))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), prev.From)
}

func TestResolveRange_Default(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	cur, _, err := resolveRange(&StatsQuery{}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), cur.To)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), cur.From)
	// 30 calendar days
	assert.Equal(t, 30*24*time.Hour, cur.To.Sub(cur.From))
}

func TestResolveRange_FromOnly(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	// A lone from runs through the end of today.
	cur, prev, err := resolveRange(&StatsQuery{From: "2024-06-01"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), cur.From)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), cur.To)
	assert.Nil(t, prev)
}

func TestResolveRange_ToOnly(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	// A lone to gets the default 30 days leading up to it.
	cur, _, err := resolveRange(&StatsQuery{To: "2024-06-07"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), cur.To)
	assert.Equal(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), cur.From)
	assert.Equal(t, 30*24*time.Hour, cur.To.Sub(cur.From))
}

func TestResolveRange_Invalid(t *testing.T) {
	now := time.Now()

	_, _, err := resolveRange(&StatsQuery{From: "June 1", To: "2024-06-07"}, now)
	assert.Error(t, err)

	_, _, err = resolveRange(&StatsQuery{From: "2024-06-07", To: "2024-06-01"}, now)
	assert.Error(t, err)
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0, percentChange(0, 0))
	assert.Equal(t, 100, percentChange(5, 0))
	assert.Equal(t, 50, percentChange(15, 10))
	assert.Equal(t, -50, percentChange(5, 10))
	assert.Equal(t, 33, percentChange(4, 3))
	assert.Equal(t, -100, percentChange(0, 7))
}

func TestRatePct(t *testing.T) {
	assert.Equal(t, 0, ratePct(0, 0))
	assert.Equal(t, 50, ratePct(1, 2))
	assert.Equal(t, 67, ratePct(2, 3))
	assert.Equal(t, 100, ratePct(5, 5))
}

func TestFillDays(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)

	days := fillDays(from, to, []entity.DayPoint{
		{Date: "2024-06-02", Count: 3, Confirmed: 2},
		{Date: "2024-06-04", Count: 1, Confirmed: 0},
	})

	require.Len(t, days, 5)
	assert.Equal(t, "2024-06-01", days[0].Date)
	assert.Equal(t, 0, days[0].Count)
	assert.Equal(t, 3, days[1].Count)
	assert.Equal(t, 2, days[1].Confirmed)
	assert.Equal(t, 0, days[2].Count)
	assert.Equal(t, 1, days[3].Count)
	assert.Equal(t, "2024-06-05", days[4].Date)
}

func TestFillHours(t *testing.T) {
	hours := fillHours([]entity.HourPoint{
		{Hour: 9, Count: 4},
		{Hour: 23, Count: 1},
	})

	require.Len(t, hours, 24)
	assert.Equal(t, 0, hours[0].Count)
	assert.Equal(t, 4, hours[9].Count)
	assert.Equal(t, 1, hours[23].Count)
}

func TestWaitlistStats_WindowStatusCounts(t *testing.T) {
	ctx := context.Background()
	rep := mocks.NewRepository(t)
	wm := mocks.NewWaitlists(t)
	stm := mocks.NewStats(t)
	rep.On("Waitlists").Return(wm).Maybe()
	rep.On("Stats").Return(stm).Maybe()
	srv := New(rep)

	wm.On("GetWaitlistById", ctx, 1).Return(&entity.Waitlist{Id: 1, Slug: "beta"}, nil)
	stm.On("StatusCountsInRange", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.StatusCounts{Total: 10, Pending: 4, Confirmed: 5, Invited: 1}, nil)
	stm.On("StatusCountsAllTime", ctx, mock.Anything).
		Return(&entity.StatusCounts{Total: 40, Pending: 20, Confirmed: 15, Invited: 5}, nil)
	stm.On("CountSince", ctx, mock.Anything, mock.Anything).Return(2, nil)
	stm.On("SignupsByDay", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.DayPoint{}, nil)
	stm.On("SignupsByHour", ctx, 1, mock.Anything, mock.Anything).
		Return([]entity.HourPoint{}, nil)
	stm.On("SignupsBySource", ctx, mock.Anything, mock.Anything, mock.Anything, topSourcesLimit).
		Return(nil, nil)

	stats, err := srv.WaitlistStats(ctx, 1, &StatsQuery{From: "2024-06-01", To: "2024-06-07"})
	require.NoError(t, err)

	// The window's own status buckets ride along next to the all-time ones.
	assert.Equal(t, entity.StatusCounts{Total: 10, Pending: 4, Confirmed: 5, Invited: 1}, stats.StatusCounts)
	assert.Equal(t, entity.StatusCounts{Total: 40, Pending: 20, Confirmed: 15, Invited: 5}, stats.AllTime)
	// Invited counts as confirmed for the rate: (5+1)/10.
	assert.Equal(t, 60, stats.ConfirmationRate.Value)
	assert.Equal(t, 2, stats.Today)
}

func TestMetric(t *testing.T) {
	m := metric(10, nil)
	assert.Equal(t, 10, m.Value)
	assert.Nil(t, m.CompareValue)
	assert.Nil(t, m.ChangePct)

	prev := 5
	m = metric(10, &prev)
	require.NotNil(t, m.ChangePct)
	assert.Equal(t, 100, *m.ChangePct)
}
