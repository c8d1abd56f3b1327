package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/waitlist-manager/internal/dependency"
)

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing dependency.Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

// AddAdmin creates a new admin user
func (as *adminStore) AddAdmin(ctx context.Context, un, pwHash string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		_, err := rep.DB().ExecContext(ctx, `
		INSERT INTO admins
		(username, password_hash)
		VALUES
		(?, ?)`, un, pwHash)
		if err != nil {
			return fmt.Errorf("can't add admin user %v", err.Error())
		}
		return nil
	})
}

// DeleteAdmin deletes an admin user
func (as *adminStore) DeleteAdmin(ctx context.Context, username string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		res, err := rep.DB().ExecContext(ctx, `
		DELETE FROM admins WHERE username = ?`, username)
		if err != nil {
			return fmt.Errorf("failed to delete admin user")
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows")
		}
		if ra == 0 {
			return fmt.Errorf("admin not found")
		}
		return nil
	})
}

// ChangePassword changes the password of an admin user
func (as *adminStore) ChangePassword(ctx context.Context, un, newHash string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		res, err := rep.DB().ExecContext(ctx, `
			UPDATE admins
			SET password_hash = ?
			WHERE username = ?`, newHash, un)
		if err != nil {
			return fmt.Errorf("failed change admin user password")
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows")
		}
		if ra == 0 {
			return fmt.Errorf("admin not found")
		}
		return nil
	})
}

// PasswordHashByUsername returns password hash of an admin user
func (as *adminStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	row := as.db.QueryRowxContext(ctx, `
	 	SELECT
	 	password_hash
	 	FROM admins WHERE username = ?`, un)
	if row.Err() != nil {
		return "", fmt.Errorf("not found %v", row.Err().Error())
	}
	var pw string
	err := row.Scan(&pw)
	if err != nil {
		return "", fmt.Errorf("failed to scan password")
	}
	return pw, nil
}
