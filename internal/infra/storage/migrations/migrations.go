// Package migrations применяет встроенные SQL миграции к PostgreSQL
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/studio-booking/pkg/psqlbuilder"
	"github.com/m04kA/studio-booking/pkg/txmanager"
)

//go:embed sql/*.sql
var files embed.FS

var (
	ErrReadMigrations = errors.New("migrations: failed to read embedded migrations")
	ErrApplyMigration = errors.New("migrations: failed to apply migration")
)

type Logger interface {
	Info(format string, v ...interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Up применяет ещё не применённые миграции по порядку имени файла.
// Каждая миграция выполняется в отдельной транзакции вместе с записью в schema_migrations.
// Возвращает имена применённых миграций.
func Up(ctx context.Context, db *sql.DB, txManager TransactionManager, logger Logger) ([]string, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return nil, fmt.Errorf("%w: create schema_migrations: %v", ErrApplyMigration, err)
	}

	names, err := List()
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(names))
	for _, name := range names {
		done, err := isApplied(ctx, db, name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		body, err := fs.ReadFile(files, "sql/"+name)
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrReadMigrations, name, err)
		}

		err = txManager.Do(ctx, func(txCtx context.Context) error {
			executor := txmanager.GetExecutor(txCtx, db)
			if _, err := executor.ExecContext(txCtx, string(body)); err != nil {
				return err
			}

			query, args, err := psqlbuilder.Insert("schema_migrations").
				Columns("version").
				Values(name).
				ToSql()
			if err != nil {
				return err
			}
			_, err = executor.ExecContext(txCtx, query, args...)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrApplyMigration, name, err)
		}

		logger.Info("Migrate: applied %s", name)
		applied = append(applied, name)
	}

	return applied, nil
}

// List возвращает имена встроенных миграций по порядку
func List() ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("schema_migrations").
		Where(squirrel.Eq{"version": name}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build query: %v", ErrApplyMigration, err)
	}

	var one int
	err = db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: check %s: %v", ErrApplyMigration, name, err)
	}
	return true, nil
}
