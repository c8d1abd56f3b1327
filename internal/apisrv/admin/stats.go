package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

var hundred = decimal.NewFromInt(100)

const (
	defaultWindowDays = 30
	topSourcesLimit   = 10
	topWaitlistsLimit = 5
	dateLayout        = "2006-01-02"
)

// StatsQuery carries the raw analytics range parameters. From and To are
// ISO calendar dates, inclusive; empty means the trailing 30 days.
type StatsQuery struct {
	From    string
	To      string
	Compare bool
}

// resolveRange turns a query into a half-open UTC window [From, To) and,
// when compare is requested, the equal-length window immediately before
// it. Boundaries are calendar days: From opens at 00:00:00Z, To closes
// at the end of its day. A missing To defaults to today, a missing From
// to 30 days before To.
func resolveRange(q *StatsQuery, now time.Time) (entity.TimeRange, *entity.TimeRange, error) {
	var cur entity.TimeRange

	if q.To != "" {
		to, err := time.ParseInLocation(dateLayout, q.To, time.UTC)
		if err != nil {
			return cur, nil, gerr.Validation(fmt.Sprintf("invalid to date %q", q.To))
		}
		cur.To = to.Add(24 * time.Hour)
	} else {
		today := now.UTC().Truncate(24 * time.Hour)
		cur.To = today.Add(24 * time.Hour)
	}

	if q.From != "" {
		from, err := time.ParseInLocation(dateLayout, q.From, time.UTC)
		if err != nil {
			return cur, nil, gerr.Validation(fmt.Sprintf("invalid from date %q", q.From))
		}
		cur.From = from
	} else {
		cur.From = cur.To.AddDate(0, 0, -defaultWindowDays)
	}

	if cur.To.Sub(cur.From) < 24*time.Hour {
		return cur, nil, gerr.Validation("to date is before from date")
	}

	if !q.Compare {
		return cur, nil, nil
	}
	length := cur.To.Sub(cur.From)
	prev := &entity.TimeRange{
		From: cur.From.Add(-length),
		To:   cur.From,
	}
	return cur, prev, nil
}

// percentChange follows the dashboard rule: 0 when both values are zero,
// 100 when only the previous one is, the rounded relative change
// otherwise.
func percentChange(current, previous int) int {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	change := decimal.NewFromInt(int64(current - previous)).
		Div(decimal.NewFromInt(int64(previous))).
		Mul(hundred)
	return int(change.Round(0).IntPart())
}

// ratePct is the confirmation rate as a rounded percentage, 0 for an
// empty window.
func ratePct(confirmed, total int) int {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(confirmed)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred)
	return int(rate.Round(0).IntPart())
}

func metric(current int, previous *int) entity.Metric {
	m := entity.Metric{Value: current}
	if previous != nil {
		change := percentChange(current, *previous)
		m.CompareValue = previous
		m.ChangePct = &change
	}
	return m
}

// fillDays produces one entry per calendar day of [from, to), zero for
// days without signups.
func fillDays(from, to time.Time, points []entity.DayPoint) []entity.DayPoint {
	byDate := make(map[string]entity.DayPoint, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}
	out := make([]entity.DayPoint, 0, int(to.Sub(from).Hours()/24))
	for d := from; d.Before(to); d = d.Add(24 * time.Hour) {
		key := d.Format(dateLayout)
		if p, ok := byDate[key]; ok {
			out = append(out, p)
		} else {
			out = append(out, entity.DayPoint{Date: key})
		}
	}
	return out
}

// fillHours produces all 24 hour-of-day buckets.
func fillHours(points []entity.HourPoint) []entity.HourPoint {
	byHour := make(map[int]int, len(points))
	for _, p := range points {
		byHour[p.Hour] = p.Count
	}
	out := make([]entity.HourPoint, 24)
	for h := 0; h < 24; h++ {
		out[h] = entity.HourPoint{Hour: h, Count: byHour[h]}
	}
	return out
}

// localMidnight is the start of "today" in server-local time, used for
// the ad hoc today counter.
func localMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

type windowCounts struct {
	signups   int
	confirmed int
	rate      int
	buckets   entity.StatusCounts
}

func (s *Server) windowCounts(ctx context.Context, waitlistId *int, r entity.TimeRange) (windowCounts, error) {
	sc, err := s.repo.Stats().StatusCountsInRange(ctx, waitlistId, r.From, r.To)
	if err != nil {
		return windowCounts{}, err
	}
	confirmed, total := sc.ConfirmedRate()
	return windowCounts{
		signups:   sc.Total,
		confirmed: confirmed,
		rate:      ratePct(confirmed, total),
		buckets:   *sc,
	}, nil
}

// WaitlistStats computes the per-waitlist analytics payload.
func (s *Server) WaitlistStats(ctx context.Context, waitlistId int, q *StatsQuery) (*entity.WaitlistStats, error) {
	if _, err := s.repo.Waitlists().GetWaitlistById(ctx, waitlistId); err != nil {
		return nil, err
	}

	now := time.Now()
	cur, prev, err := resolveRange(q, now)
	if err != nil {
		return nil, err
	}

	curCounts, err := s.windowCounts(ctx, &waitlistId, cur)
	if err != nil {
		return nil, err
	}

	stats := &entity.WaitlistStats{
		Period:        cur,
		ComparePeriod: prev,
		StatusCounts:  curCounts.buckets,
	}

	if prev != nil {
		prevCounts, err := s.windowCounts(ctx, &waitlistId, *prev)
		if err != nil {
			return nil, err
		}
		stats.Signups = metric(curCounts.signups, &prevCounts.signups)
		stats.Confirmed = metric(curCounts.confirmed, &prevCounts.confirmed)
		stats.ConfirmationRate = metric(curCounts.rate, &prevCounts.rate)
		rateChange := curCounts.rate - prevCounts.rate
		stats.RateChange = &rateChange
	} else {
		stats.Signups = metric(curCounts.signups, nil)
		stats.Confirmed = metric(curCounts.confirmed, nil)
		stats.ConfirmationRate = metric(curCounts.rate, nil)
	}

	allTime, err := s.repo.Stats().StatusCountsAllTime(ctx, &waitlistId)
	if err != nil {
		return nil, err
	}
	stats.AllTime = *allTime

	today, err := s.repo.Stats().CountSince(ctx, &waitlistId, localMidnight(now))
	if err != nil {
		return nil, err
	}
	stats.Today = today

	days, err := s.repo.Stats().SignupsByDay(ctx, &waitlistId, cur.From, cur.To)
	if err != nil {
		return nil, err
	}
	stats.ByDay = fillDays(cur.From, cur.To, days)

	hours, err := s.repo.Stats().SignupsByHour(ctx, waitlistId, cur.From, cur.To)
	if err != nil {
		return nil, err
	}
	stats.ByHour = fillHours(hours)

	sources, err := s.repo.Stats().SignupsBySource(ctx, &waitlistId, cur.From, cur.To, topSourcesLimit)
	if err != nil {
		return nil, err
	}
	if sources == nil {
		sources = []entity.SourceCount{}
	}
	stats.BySource = sources

	return stats, nil
}

// DashboardStats computes the cross-waitlist analytics payload.
func (s *Server) DashboardStats(ctx context.Context, q *StatsQuery) (*entity.DashboardStats, error) {
	now := time.Now()
	cur, prev, err := resolveRange(q, now)
	if err != nil {
		return nil, err
	}

	curCounts, err := s.windowCounts(ctx, nil, cur)
	if err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{
		Period:        cur,
		ComparePeriod: prev,
	}

	if prev != nil {
		prevCounts, err := s.windowCounts(ctx, nil, *prev)
		if err != nil {
			return nil, err
		}
		stats.Signups = metric(curCounts.signups, &prevCounts.signups)
		stats.Confirmed = metric(curCounts.confirmed, &prevCounts.confirmed)
		stats.ConfirmationRate = metric(curCounts.rate, &prevCounts.rate)
		rateChange := curCounts.rate - prevCounts.rate
		stats.RateChange = &rateChange
	} else {
		stats.Signups = metric(curCounts.signups, nil)
		stats.Confirmed = metric(curCounts.confirmed, nil)
		stats.ConfirmationRate = metric(curCounts.rate, nil)
	}

	allTime, err := s.repo.Stats().StatusCountsAllTime(ctx, nil)
	if err != nil {
		return nil, err
	}
	stats.AllTime = *allTime

	today, err := s.repo.Stats().CountSince(ctx, nil, localMidnight(now))
	if err != nil {
		return nil, err
	}
	stats.Today = today

	days, err := s.repo.Stats().SignupsByDay(ctx, nil, cur.From, cur.To)
	if err != nil {
		return nil, err
	}
	stats.ByDay = fillDays(cur.From, cur.To, days)

	top, err := s.repo.Stats().TopWaitlists(ctx, cur.From, cur.To, topWaitlistsLimit)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []entity.WaitlistRank{}
	}
	stats.TopWaitlists = top

	sources, err := s.repo.Stats().SignupsBySource(ctx, nil, cur.From, cur.To, topSourcesLimit)
	if err != nil {
		return nil, err
	}
	if sources == nil {
		sources = []entity.SourceCount{}
	}
	stats.TopSources = sources

	return stats, nil
}
