package oraload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Repository defines the database operations used by the loader.
type Repository interface {
	// EnsureTable creates the table if it does not exist yet.
	EnsureTable(ctx context.Context, tableName string) (created bool, err error)

	// Truncate executes a TRUNCATE TABLE command.
	Truncate(ctx context.Context, tableName string) error

	// BulkInsert executes the bulk insert using the provided builder.
	BulkInsert(ctx context.Context, builder *BulkInsertBuilder) error

	// CountRows returns the number of rows in the table.
	CountRows(ctx context.Context, tableName string) (int64, error)
}

// Repo implements Repository on an Oracle connection.
type Repo struct {
	db *sqlx.DB
}

// NewRepo creates a new Repo instance.
func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// oracle-friendly :1, :2 ...
var stmtBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Colon)

func tableExistsQuery(tableName string) (string, []interface{}, error) {
	return stmtBuilder.
		Select("COUNT(1)").
		From("USER_TABLES").
		Where(sq.Eq{"TABLE_NAME": strings.ToUpper(tableName)}).
		ToSql()
}

func countRowsQuery(tableName string) (string, []interface{}, error) {
	return stmtBuilder.Select("COUNT(1)").From(tableName).ToSql()
}

// EnsureTable checks USER_TABLES and creates the table when missing.
func (r *Repo) EnsureTable(ctx context.Context, tableName string) (bool, error) {
	query, args, err := tableExistsQuery(tableName)
	if err != nil {
		return false, err
	}
	var cnt int64
	if err := r.db.GetContext(ctx, &cnt, query, args...); err != nil {
		return false, fmt.Errorf("check table exists failed: %w", err)
	}
	if cnt > 0 {
		return false, nil
	}

	slog.Info("Creating table", LogFieldTable, tableName)
	if _, err := r.db.ExecContext(ctx, CreateTableDDL(tableName)); err != nil {
		return false, fmt.Errorf("create table failed: %w", err)
	}
	return true, nil
}

// Truncate executes a TRUNCATE TABLE command.
func (r *Repo) Truncate(ctx context.Context, tableName string) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s", tableName)
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// BulkInsert executes the bulk insert using the provided builder.
func (r *Repo) BulkInsert(ctx context.Context, builder *BulkInsertBuilder) error {
	_, err := r.db.ExecContext(ctx, builder.GetSQL(), builder.GetArgs()...)
	return err
}

// CountRows returns the number of rows in the table.
func (r *Repo) CountRows(ctx context.Context, tableName string) (int64, error) {
	query, args, err := countRowsQuery(tableName)
	if err != nil {
		return 0, err
	}
	var cnt int64
	if err := r.db.GetContext(ctx, &cnt, query, args...); err != nil {
		return 0, fmt.Errorf("count rows failed: %w", err)
	}
	return cnt, nil
}
