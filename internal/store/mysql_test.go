package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		dsn = "user:pass@(localhost:3306)/waitlist?charset=utf8&parseTime=true"
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	_, err = db.db.ExecContext(context.Background(), "SET FOREIGN_KEY_CHECKS = 0")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM signup")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM waitlist")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM send_email_request")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM admins")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "SET FOREIGN_KEY_CHECKS = 1")
	assert.NoError(t, err)

	return db
}
