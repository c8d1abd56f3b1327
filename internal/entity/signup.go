package entity

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"
)

// SignupStatus is the lifecycle state of a signup.
type SignupStatus string

const (
	StatusPending   SignupStatus = "pending"
	StatusConfirmed SignupStatus = "confirmed"
	StatusInvited   SignupStatus = "invited"
)

// Valid reports whether the status is one of the known states.
func (s SignupStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInvited:
		return true
	}
	return false
}

// CustomData maps custom field keys to submitted values, stored as a JSON
// column.
type CustomData map[string]string

func (cd CustomData) Value() (driver.Value, error) {
	if cd == nil {
		return "{}", nil
	}
	return json.Marshal(cd)
}

func (cd *CustomData) Scan(src any) error {
	return scanJSON(src, cd)
}

// Signup is one email's membership record in one waitlist.
type Signup struct {
	Id                int            `db:"id"`
	WaitlistId        int            `db:"waitlist_id"`
	Email             string         `db:"email"`
	Position          int            `db:"position"`
	Status            SignupStatus   `db:"status"`
	CustomData        CustomData     `db:"custom_data"`
	ReferralSource    sql.NullString `db:"referral_source"`
	IpAddress         sql.NullString `db:"ip_address"`
	UserAgent         sql.NullString `db:"user_agent"`
	ConfirmationToken sql.NullString `db:"confirmation_token"`
	ConfirmedAt       sql.NullTime   `db:"confirmed_at"`
	CreatedAt         time.Time      `db:"created_at"`
}

// SignupInsert carries a new signup row. Position is assigned by the store.
type SignupInsert struct {
	WaitlistId        int
	Email             string
	Status            SignupStatus
	CustomData        CustomData
	ReferralSource    string
	IpAddress         string
	UserAgent         string
	ConfirmationToken string
	Confirmed         bool
}

// SignupListFilter narrows and orders an admin signup listing.
type SignupListFilter struct {
	Search string
	Status SignupStatus
	Sort   string
	Order  string
	Limit  int
	Offset int
}
