package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/entity"
)

type statsStore struct {
	*MYSQLStore
}

// Stats returns an object implementing Stats interface
func (ms *MYSQLStore) Stats() dependency.Stats {
	return &statsStore{
		MYSQLStore: ms,
	}
}

// waitlistClause returns the optional waitlist filter. A nil waitlistId
// aggregates over every waitlist.
func waitlistClause(waitlistId *int, params map[string]any) string {
	if waitlistId == nil {
		return ""
	}
	params["waitlistId"] = *waitlistId
	return " AND waitlist_id = :waitlistId"
}

func (ms *MYSQLStore) StatusCountsInRange(ctx context.Context, waitlistId *int, from, to time.Time) (*entity.StatusCounts, error) {
	params := map[string]any{"from": from, "to": to}
	query := `
	SELECT
		COUNT(*) AS total,
		COALESCE(SUM(status = 'pending'), 0) AS pending,
		COALESCE(SUM(status = 'confirmed'), 0) AS confirmed,
		COALESCE(SUM(status = 'invited'), 0) AS invited
	FROM signup
	WHERE created_at >= :from AND created_at < :to` + waitlistClause(waitlistId, params)

	sc, err := QueryNamedOne[entity.StatusCounts](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	return &sc, nil
}

func (ms *MYSQLStore) StatusCountsAllTime(ctx context.Context, waitlistId *int) (*entity.StatusCounts, error) {
	params := map[string]any{}
	query := `
	SELECT
		COUNT(*) AS total,
		COALESCE(SUM(status = 'pending'), 0) AS pending,
		COALESCE(SUM(status = 'confirmed'), 0) AS confirmed,
		COALESCE(SUM(status = 'invited'), 0) AS invited
	FROM signup
	WHERE 1 = 1` + waitlistClause(waitlistId, params)

	sc, err := QueryNamedOne[entity.StatusCounts](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get all-time status counts: %w", err)
	}
	return &sc, nil
}

func (ms *MYSQLStore) CountSince(ctx context.Context, waitlistId *int, since time.Time) (int, error) {
	params := map[string]any{"since": since}
	query := `SELECT COUNT(*) FROM signup WHERE created_at >= :since` + waitlistClause(waitlistId, params)
	count, err := QueryCountNamed(ctx, ms.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to count signups since: %w", err)
	}
	return count, nil
}

// SignupsByDay groups signups by calendar day. Gap days are absent here;
// the aggregator zero-fills them.
func (ms *MYSQLStore) SignupsByDay(ctx context.Context, waitlistId *int, from, to time.Time) ([]entity.DayPoint, error) {
	params := map[string]any{"from": from, "to": to}
	query := `
	SELECT
		DATE_FORMAT(created_at, '%Y-%m-%d') AS d,
		COUNT(*) AS cnt,
		COALESCE(SUM(status IN ('confirmed', 'invited')), 0) AS confirmed
	FROM signup
	WHERE created_at >= :from AND created_at < :to` + waitlistClause(waitlistId, params) + `
	GROUP BY d
	ORDER BY d`

	points, err := QueryListNamed[entity.DayPoint](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get signups by day: %w", err)
	}
	return points, nil
}

func (ms *MYSQLStore) SignupsByHour(ctx context.Context, waitlistId int, from, to time.Time) ([]entity.HourPoint, error) {
	query := `
	SELECT HOUR(created_at) AS h, COUNT(*) AS cnt
	FROM signup
	WHERE created_at >= :from AND created_at < :to AND waitlist_id = :waitlistId
	GROUP BY h
	ORDER BY h`

	points, err := QueryListNamed[entity.HourPoint](ctx, ms.DB(), query, map[string]any{
		"from":       from,
		"to":         to,
		"waitlistId": waitlistId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get signups by hour: %w", err)
	}
	return points, nil
}

func (ms *MYSQLStore) SignupsBySource(ctx context.Context, waitlistId *int, from, to time.Time, limit int) ([]entity.SourceCount, error) {
	params := map[string]any{"from": from, "to": to, "limit": limit}
	query := `
	SELECT
		COALESCE(NULLIF(referral_source, ''), 'direct') AS source,
		COUNT(*) AS cnt
	FROM signup
	WHERE created_at >= :from AND created_at < :to` + waitlistClause(waitlistId, params) + `
	GROUP BY source
	ORDER BY cnt DESC
	LIMIT :limit`

	sources, err := QueryListNamed[entity.SourceCount](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get signups by source: %w", err)
	}
	return sources, nil
}

// TopWaitlists ranks waitlists by signup count inside the window. Ties keep
// database order.
func (ms *MYSQLStore) TopWaitlists(ctx context.Context, from, to time.Time, limit int) ([]entity.WaitlistRank, error) {
	query := `
	SELECT
		w.id AS waitlist_id,
		w.name AS name,
		w.slug AS slug,
		COUNT(s.id) AS cnt,
		COALESCE(SUM(s.status IN ('confirmed', 'invited')), 0) AS confirmed
	FROM waitlist w
	LEFT JOIN signup s ON s.waitlist_id = w.id AND s.created_at >= :from AND s.created_at < :to
	GROUP BY w.id, w.name, w.slug
	ORDER BY cnt DESC, w.id
	LIMIT :limit`

	rows, err := QueryListNamed[struct {
		WaitlistId int    `db:"waitlist_id"`
		Name       string `db:"name"`
		Slug       string `db:"slug"`
		Count      int    `db:"cnt"`
		Confirmed  int    `db:"confirmed"`
	}](ctx, ms.DB(), query, map[string]any{"from": from, "to": to, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("failed to get top waitlists: %w", err)
	}

	ranks := make([]entity.WaitlistRank, 0, len(rows))
	for _, r := range rows {
		rate := 0
		if r.Count > 0 {
			pct := decimal.NewFromInt(int64(r.Confirmed)).
				Div(decimal.NewFromInt(int64(r.Count))).
				Mul(decimal.NewFromInt(100))
			rate = int(pct.Round(0).IntPart())
		}
		ranks = append(ranks, entity.WaitlistRank{
			WaitlistId:       r.WaitlistId,
			Name:             r.Name,
			Slug:             r.Slug,
			Signups:          r.Count,
			ConfirmationRate: rate,
		})
	}
	return ranks, nil
}
