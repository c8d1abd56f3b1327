package entity

import "time"

// TimeRange is a half-open window [From, To) used by analytics queries.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Metric is a windowed count with an optional comparison value from the
// preceding window of equal length. ChangePct follows the dashboard rule:
// 0 when both windows are empty, 100 when only the previous one is, the
// rounded relative change otherwise.
type Metric struct {
	Value        int  `json:"value"`
	CompareValue *int `json:"compareValue,omitempty"`
	ChangePct    *int `json:"changePct,omitempty"`
}

// DayPoint is one calendar day of the zero-filled daily series.
type DayPoint struct {
	Date      string `json:"date" db:"d"`
	Count     int    `json:"count" db:"cnt"`
	Confirmed int    `json:"confirmed" db:"confirmed"`
}

// HourPoint is one bucket of the hour-of-day histogram.
type HourPoint struct {
	Hour  int `json:"hour" db:"h"`
	Count int `json:"count" db:"cnt"`
}

// SourceCount is one referral source bucket; null sources are reported as
// "direct".
type SourceCount struct {
	Source string `json:"source" db:"source"`
	Count  int    `json:"count" db:"cnt"`
}

// StatusCounts buckets signups by status for one window.
type StatusCounts struct {
	Total     int `json:"total" db:"total"`
	Pending   int `json:"pending" db:"pending"`
	Confirmed int `json:"confirmed" db:"confirmed"`
	Invited   int `json:"invited" db:"invited"`
}

// ConfirmedRate is the share of signups counted as confirmed for rate
// purposes, which includes invited.
func (sc StatusCounts) ConfirmedRate() (confirmed, total int) {
	return sc.Confirmed + sc.Invited, sc.Total
}

// WaitlistStats is the per-waitlist analytics payload.
type WaitlistStats struct {
	Period        TimeRange  `json:"-"`
	ComparePeriod *TimeRange `json:"-"`

	Signups          Metric  `json:"signups"`
	Confirmed        Metric  `json:"confirmed"`
	ConfirmationRate Metric  `json:"confirmationRate"`
	RateChange       *int    `json:"rateChange,omitempty"`

	StatusCounts StatusCounts `json:"statusCounts"`
	AllTime      StatusCounts `json:"allTime"`
	Today        int          `json:"today"`

	ByDay    []DayPoint    `json:"byDay"`
	ByHour   []HourPoint   `json:"byHour"`
	BySource []SourceCount `json:"bySource"`
}

// WaitlistRank is one entry of the dashboard's top waitlists ranking.
type WaitlistRank struct {
	WaitlistId       int    `json:"waitlistId" db:"waitlist_id"`
	Name             string `json:"name" db:"name"`
	Slug             string `json:"slug" db:"slug"`
	Signups          int    `json:"signups" db:"cnt"`
	ConfirmationRate int    `json:"confirmationRate" db:"-"`
}

// DashboardStats aggregates over every waitlist.
type DashboardStats struct {
	Period        TimeRange  `json:"-"`
	ComparePeriod *TimeRange `json:"-"`

	Signups          Metric `json:"signups"`
	Confirmed        Metric `json:"confirmed"`
	ConfirmationRate Metric `json:"confirmationRate"`
	RateChange       *int   `json:"rateChange,omitempty"`

	AllTime StatusCounts `json:"allTime"`
	Today   int          `json:"today"`

	ByDay        []DayPoint     `json:"byDay"`
	TopWaitlists []WaitlistRank `json:"topWaitlists"`
	TopSources   []SourceCount  `json:"topSources"`
}
