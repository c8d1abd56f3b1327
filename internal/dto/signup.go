package dto

import (
	"time"

	"github.com/jekabolt/waitlist-manager/internal/entity"
)

// Signup is the admin API view of a signup row.
type Signup struct {
	Id             int                 `json:"id"`
	WaitlistId     int                 `json:"waitlistId"`
	Email          string              `json:"email"`
	Position       int                 `json:"position"`
	Status         entity.SignupStatus `json:"status"`
	CustomData     entity.CustomData   `json:"customData"`
	ReferralSource string              `json:"referralSource,omitempty"`
	ConfirmedAt    *time.Time          `json:"confirmedAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ConvertEntitySignup maps a storage signup to its API view.
func ConvertEntitySignup(s *entity.Signup) *Signup {
	cd := s.CustomData
	if cd == nil {
		cd = entity.CustomData{}
	}
	var confirmed *time.Time
	if s.ConfirmedAt.Valid {
		t := s.ConfirmedAt.Time
		confirmed = &t
	}
	return &Signup{
		Id:             s.Id,
		WaitlistId:     s.WaitlistId,
		Email:          s.Email,
		Position:       s.Position,
		Status:         s.Status,
		CustomData:     cd,
		ReferralSource: s.ReferralSource.String,
		ConfirmedAt:    confirmed,
		CreatedAt:      s.CreatedAt,
	}
}

// ConvertEntitySignups maps a signup slice to API views.
func ConvertEntitySignups(ss []entity.Signup) []Signup {
	out := make([]Signup, 0, len(ss))
	for i := range ss {
		out = append(out, *ConvertEntitySignup(&ss[i]))
	}
	return out
}
