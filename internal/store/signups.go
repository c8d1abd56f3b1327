package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
	"github.com/jekabolt/waitlist-manager/internal/entity"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

type signupStore struct {
	*MYSQLStore
}

// Signups returns an object implementing Signups interface
func (ms *MYSQLStore) Signups() dependency.Signups {
	return &signupStore{
		MYSQLStore: ms,
	}
}

// AddSignup inserts a signup with the next free position. Position is
// max(position)+1 computed inside a serializable transaction, so two
// concurrent signups to the same waitlist cannot claim the same slot; the
// unique index on (waitlist_id, position) backstops it.
func (ms *MYSQLStore) AddSignup(ctx context.Context, si *entity.SignupInsert) (*entity.Signup, error) {
	var signup *entity.Signup
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		type row struct {
			Next int `db:"next_position"`
		}
		r, err := QueryNamedOne[row](ctx, rep.DB(),
			`SELECT COALESCE(MAX(position), 0) + 1 AS next_position FROM signup WHERE waitlist_id = :waitlistId`,
			map[string]any{"waitlistId": si.WaitlistId})
		if err != nil {
			return fmt.Errorf("failed to compute next position: %w", err)
		}

		params := map[string]any{
			"waitlistId":        si.WaitlistId,
			"email":             si.Email,
			"position":          r.Next,
			"status":            si.Status,
			"customData":        si.CustomData,
			"referralSource":    nullString(si.ReferralSource),
			"ipAddress":         nullString(si.IpAddress),
			"userAgent":         nullString(si.UserAgent),
			"confirmationToken": nullString(si.ConfirmationToken),
		}
		query := `
		INSERT INTO signup
			(waitlist_id, email, position, status, custom_data, referral_source,
			ip_address, user_agent, confirmation_token, confirmed_at)
		VALUES
			(:waitlistId, :email, :position, :status, :customData, :referralSource,
			:ipAddress, :userAgent, :confirmationToken, :confirmedAt)
		`
		if si.Confirmed {
			params["confirmedAt"] = sql.NullTime{Time: rep.Now(), Valid: true}
		} else {
			params["confirmedAt"] = sql.NullTime{}
		}

		id, err := ExecNamedLastId(ctx, rep.DB(), query, params)
		if err != nil {
			if ms.IsErrUniqueViolation(err) {
				return gerr.ErrAlreadySignedUp
			}
			return fmt.Errorf("failed to insert signup: %w", err)
		}

		s, err := getSignupById(ctx, rep.DB(), id)
		if err != nil {
			return err
		}
		signup = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return signup, nil
}

func (ms *MYSQLStore) GetSignupByEmail(ctx context.Context, waitlistId int, email string) (*entity.Signup, error) {
	query := `SELECT * FROM signup WHERE waitlist_id = :waitlistId AND email = :email`
	s, err := QueryNamedOne[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"waitlistId": waitlistId,
		"email":      email,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get signup by email: %w", err)
	}
	return &s, nil
}

func (ms *MYSQLStore) GetSignupByToken(ctx context.Context, waitlistId int, token string) (*entity.Signup, error) {
	query := `SELECT * FROM signup WHERE waitlist_id = :waitlistId AND confirmation_token = :token`
	s, err := QueryNamedOne[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"waitlistId": waitlistId,
		"token":      token,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get signup by token: %w", err)
	}
	return &s, nil
}

func (ms *MYSQLStore) GetSignupById(ctx context.Context, id int) (*entity.Signup, error) {
	return getSignupById(ctx, ms.DB(), id)
}

func getSignupById(ctx context.Context, conn dependency.DB, id int) (*entity.Signup, error) {
	query := `SELECT * FROM signup WHERE id = :id`
	s, err := QueryNamedOne[entity.Signup](ctx, conn, query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrSignupNotFound
		}
		return nil, fmt.Errorf("failed to get signup: %w", err)
	}
	return &s, nil
}

func (ms *MYSQLStore) UpdateConfirmationToken(ctx context.Context, id int, token string) error {
	err := ExecNamed(ctx, ms.DB(), `UPDATE signup SET confirmation_token = :token WHERE id = :id`, map[string]any{
		"id":    id,
		"token": token,
	})
	if err != nil {
		return fmt.Errorf("failed to update confirmation token: %w", err)
	}
	return nil
}

// ConfirmSignup marks a signup confirmed, stamps confirmed_at and clears
// the token so the confirmation link is single-use.
func (ms *MYSQLStore) ConfirmSignup(ctx context.Context, id int) (*entity.Signup, error) {
	err := ExecNamed(ctx, ms.DB(), `
	UPDATE signup SET status = 'confirmed', confirmed_at = :confirmedAt, confirmation_token = NULL
	WHERE id = :id`, map[string]any{
		"id":          id,
		"confirmedAt": sql.NullTime{Time: ms.Now(), Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to confirm signup: %w", err)
	}
	return getSignupById(ctx, ms.DB(), id)
}

func (ms *MYSQLStore) SetSignupStatus(ctx context.Context, id int, status entity.SignupStatus) (*entity.Signup, error) {
	params := map[string]any{
		"id":     id,
		"status": status,
	}
	var query string
	switch status {
	case entity.StatusPending:
		// admin reset back to pending drops the confirmation stamp
		query = `UPDATE signup SET status = :status, confirmed_at = NULL WHERE id = :id`
	case entity.StatusConfirmed, entity.StatusInvited:
		query = `UPDATE signup SET status = :status,
			confirmed_at = COALESCE(confirmed_at, :confirmedAt),
			confirmation_token = NULL
			WHERE id = :id`
		params["confirmedAt"] = sql.NullTime{Time: ms.Now(), Valid: true}
	default:
		return nil, gerr.Validation(fmt.Sprintf("unknown status %q", status))
	}

	err := ExecNamed(ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to set signup status: %w", err)
	}
	return getSignupById(ctx, ms.DB(), id)
}

var signupSortColumns = map[string]string{
	"position":  "position",
	"email":     "email",
	"status":    "status",
	"createdAt": "created_at",
}

func (ms *MYSQLStore) GetSignupsPaged(ctx context.Context, waitlistId int, filter *entity.SignupListFilter) ([]entity.Signup, int, error) {
	where := []string{"waitlist_id = :waitlistId"}
	params := map[string]any{"waitlistId": waitlistId}

	if filter.Search != "" {
		where = append(where, "email LIKE :search")
		params["search"] = "%" + filter.Search + "%"
	}
	if filter.Status != "" {
		where = append(where, "status = :status")
		params["status"] = filter.Status
	}

	sortCol, ok := signupSortColumns[filter.Sort]
	if !ok {
		sortCol = "position"
	}
	order := "ASC"
	if strings.EqualFold(filter.Order, "desc") {
		order = "DESC"
	}

	whereClause := strings.Join(where, " AND ")

	total, err := QueryCountNamed(ctx, ms.DB(),
		fmt.Sprintf(`SELECT COUNT(*) FROM signup WHERE %s`, whereClause), params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count signups: %w", err)
	}

	params["limit"] = filter.Limit
	params["offset"] = filter.Offset
	query := fmt.Sprintf(`SELECT * FROM signup WHERE %s ORDER BY %s %s LIMIT :limit OFFSET :offset`,
		whereClause, sortCol, order)

	signups, err := QueryListNamed[entity.Signup](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list signups: %w", err)
	}
	return signups, total, nil
}

func (ms *MYSQLStore) ListSignups(ctx context.Context, waitlistId int) ([]entity.Signup, error) {
	query := `SELECT * FROM signup WHERE waitlist_id = :waitlistId ORDER BY position`
	signups, err := QueryListNamed[entity.Signup](ctx, ms.DB(), query, map[string]any{
		"waitlistId": waitlistId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	return signups, nil
}

// ActiveSignupCount counts signups that are confirmed or invited, the
// number shown on the public status endpoint.
func (ms *MYSQLStore) ActiveSignupCount(ctx context.Context, waitlistId int) (int, error) {
	count, err := QueryCountNamed(ctx, ms.DB(),
		`SELECT COUNT(*) FROM signup WHERE waitlist_id = :waitlistId AND status IN ('confirmed', 'invited')`,
		map[string]any{"waitlistId": waitlistId})
	if err != nil {
		return 0, fmt.Errorf("failed to count active signups: %w", err)
	}
	return count, nil
}
