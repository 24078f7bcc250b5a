package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// SeedAdmin creates the initial admin account when no users exist. The
// password hash is computed by the caller.
func SeedAdmin(ctx context.Context, q *Queries, email, passwordHash string, logger *slog.Logger) error {
	n, err := q.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if n > 0 {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := q.CreateUser(ctx, CreateUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	logger.Info("seeded initial admin account", "email", email)
	return nil
}

// SeedDemo loads demo content from a SQL script. It runs only when the
// faculty table is empty, so restarting a seeded instance is a no-op. The
// whole script runs in one transaction.
func SeedDemo(ctx context.Context, db *sql.DB, path string, logger *slog.Logger) error {
	q := New(db)
	n, err := q.CountFaculty(ctx)
	if err != nil {
		return fmt.Errorf("counting faculty: %w", err)
	}
	if n > 0 {
		logger.Info("demo seed skipped: content already present")
		return nil
	}

	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed script: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range splitStatements(string(script)) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing seed statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	logger.Info("demo content seeded", "script", path)
	return nil
}

// splitStatements breaks a SQL script into individual statements on
// semicolons at end of line. Line comments are dropped. Good enough for
// seed scripts; string literals must not contain ";\n".
func splitStatements(script string) []string {
	var stmts []string
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSpace(b.String()))
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}
