package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/waitlist-manager/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --case underscore --all --output=./mocks

type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Waitlists interface {
		// AddWaitlist creates a waitlist and returns its id.
		AddWaitlist(ctx context.Context, wi *entity.WaitlistInsert) (int, error)
		// UpdateWaitlist replaces the mutable attributes of a waitlist.
		UpdateWaitlist(ctx context.Context, id int, wi *entity.WaitlistInsert) error
		GetWaitlistById(ctx context.Context, id int) (*entity.Waitlist, error)
		GetWaitlistBySlug(ctx context.Context, slug string) (*entity.Waitlist, error)
		ListWaitlists(ctx context.Context) ([]entity.Waitlist, error)
		// DeleteWaitlistById deletes a waitlist, cascading to its signups.
		DeleteWaitlistById(ctx context.Context, id int) error
	}

	Signups interface {
		ContextStore
		// AddSignup inserts a signup assigning the next free position.
		AddSignup(ctx context.Context, si *entity.SignupInsert) (*entity.Signup, error)
		GetSignupByEmail(ctx context.Context, waitlistId int, email string) (*entity.Signup, error)
		GetSignupByToken(ctx context.Context, waitlistId int, token string) (*entity.Signup, error)
		GetSignupById(ctx context.Context, id int) (*entity.Signup, error)
		// UpdateConfirmationToken replaces a pending signup's token.
		UpdateConfirmationToken(ctx context.Context, id int, token string) error
		// ConfirmSignup marks a signup confirmed and clears its token.
		ConfirmSignup(ctx context.Context, id int) (*entity.Signup, error)
		// SetSignupStatus performs an admin status transition.
		SetSignupStatus(ctx context.Context, id int, status entity.SignupStatus) (*entity.Signup, error)
		GetSignupsPaged(ctx context.Context, waitlistId int, filter *entity.SignupListFilter) ([]entity.Signup, int, error)
		// ListSignups returns every signup of a waitlist ordered by position.
		ListSignups(ctx context.Context, waitlistId int) ([]entity.Signup, error)
		// ActiveSignupCount counts confirmed and invited signups.
		ActiveSignupCount(ctx context.Context, waitlistId int) (int, error)
	}

	Stats interface {
		// StatusCountsInRange buckets signups by status inside [from, to).
		// A nil waitlistId aggregates over every waitlist.
		StatusCountsInRange(ctx context.Context, waitlistId *int, from, to time.Time) (*entity.StatusCounts, error)
		StatusCountsAllTime(ctx context.Context, waitlistId *int) (*entity.StatusCounts, error)
		CountSince(ctx context.Context, waitlistId *int, since time.Time) (int, error)
		SignupsByDay(ctx context.Context, waitlistId *int, from, to time.Time) ([]entity.DayPoint, error)
		SignupsByHour(ctx context.Context, waitlistId int, from, to time.Time) ([]entity.HourPoint, error)
		SignupsBySource(ctx context.Context, waitlistId *int, from, to time.Time, limit int) ([]entity.SourceCount, error)
		TopWaitlists(ctx context.Context, from, to time.Time, limit int) ([]entity.WaitlistRank, error)
	}

	Mail interface {
		AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error)
		UpdateSent(ctx context.Context, id int) error
		AddError(ctx context.Context, id int, errMsg string) error
	}

	Admin interface {
		AddAdmin(ctx context.Context, un, pwHash string) error
		DeleteAdmin(ctx context.Context, username string) error
		ChangePassword(ctx context.Context, un, newHash string) error
		PasswordHashByUsername(ctx context.Context, un string) (string, error)
	}

	Repository interface {
		Waitlists() Waitlists
		Signups() Signups
		Stats() Stats
		Mail() Mail
		Admin() Admin
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Mailer sends transactional waitlist emails. Sends used on the double
	// opt-in path are required dispatches: their errors must reach the
	// caller. Everything else is sent best-effort by the services.
	Mailer interface {
		IsConfigured() bool
		SendConfirmation(ctx context.Context, rep Repository, to string, data ConfirmationData) error
		SendWelcome(ctx context.Context, rep Repository, to string, data WelcomeData) error
		SendAdminNotification(ctx context.Context, rep Repository, to string, data AdminNotificationData) error
	}

	// WebhookDispatcher fires waitlist webhooks without delivery guarantees.
	WebhookDispatcher interface {
		Fire(ctx context.Context, url string, event string, w *entity.Waitlist, s *entity.Signup) error
	}
)

// ConfirmationData fills the confirmation email template.
type ConfirmationData struct {
	WaitlistName string
	ConfirmUrl   string
	Subject      string
}

// WelcomeData fills the welcome email template.
type WelcomeData struct {
	WaitlistName string
	Position     int
	Subject      string
}

// AdminNotificationData fills the new-signup notification template.
type AdminNotificationData struct {
	WaitlistName string
	Email        string
	Position     int
}
