package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"resource_api/internal/models"
)

// ResourceSQLite stores resources in the `resources` table.
type ResourceSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewResourceSQLite(db *sql.DB) *ResourceSQLite {
	return &ResourceSQLite{db: db, now: time.Now}
}

// Ensure implementation of ResourceRepo interface at compile time.
var _ ResourceRepo = (*ResourceSQLite)(nil)

const (
	resourceColumns = `id, name, email, created_at`

	selectResourceSQL  = `SELECT ` + resourceColumns + ` FROM resources WHERE id = ?`
	selectResourcesSQL = `SELECT ` + resourceColumns + ` FROM resources ORDER BY id DESC LIMIT ?`
	insertResourceSQL  = `INSERT INTO resources (name, email, created_at) VALUES (?, ?, ?) RETURNING ` + resourceColumns
	updateResourceSQL  = `UPDATE resources SET name = ?, email = ? WHERE id = ? RETURNING ` + resourceColumns
	deleteResourceSQL  = `DELETE FROM resources WHERE id = ?`
)

// listCapacityHintMax bounds the preallocation for FindMany.
const listCapacityHintMax = 128

// withConn holds one pooled connection for the duration of fn and always returns it.
func (r *ResourceSQLite) withConn(ctx context.Context, op string, fn func(*sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return classify(op, fmt.Errorf("acquire connection: %w", err))
	}
	defer func() { _ = conn.Close() }()
	return fn(conn)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (models.Resource, error) {
	var res models.Resource
	err := row.Scan(&res.ID, &res.Name, &res.Email, &res.CreatedAt)
	return res, err
}

// FindOne returns the record with the given id.
func (r *ResourceSQLite) FindOne(ctx context.Context, id int) (models.Resource, error) {
	const op = "find resource"
	var out models.Resource
	err := r.withConn(ctx, op, func(conn *sql.Conn) error {
		res, err := scanResource(conn.QueryRowContext(ctx, selectResourceSQL, id))
		if err != nil {
			return classify(op, err)
		}
		out = res
		return nil
	})
	return out, err
}

// FindMany returns up to limit records, newest id first. An empty table yields an empty slice.
func (r *ResourceSQLite) FindMany(ctx context.Context, limit int) ([]models.Resource, error) {
	const op = "list resources"
	out := make([]models.Resource, 0, min(max(limit, 0), listCapacityHintMax))
	err := r.withConn(ctx, op, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectResourcesSQL, limit)
		if err != nil {
			return classify(op, err)
		}
		defer rows.Close()

		for rows.Next() {
			res, err := scanResource(rows)
			if err != nil {
				return classify(op, fmt.Errorf("scan resource: %w", err))
			}
			out = append(out, res)
		}
		if err := rows.Err(); err != nil {
			return classify(op, fmt.Errorf("iterate resources: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new record stamped with the current UTC time and returns it as stored.
func (r *ResourceSQLite) Create(ctx context.Context, in models.NewResource) (models.Resource, error) {
	const op = "create resource"
	createdAt := r.now().UTC().Format(models.CreatedAtLayout)

	var out models.Resource
	err := r.withConn(ctx, op, func(conn *sql.Conn) error {
		res, err := scanResource(conn.QueryRowContext(ctx, insertResourceSQL, in.Name, in.Email, createdAt))
		if err != nil {
			return classify(op, err)
		}
		out = res
		return nil
	})
	return out, err
}

// Save replaces name and email of an existing record. id and created_at are left untouched.
func (r *ResourceSQLite) Save(ctx context.Context, id int, in models.UpdateResource) (models.Resource, error) {
	const op = "save resource"
	var out models.Resource
	err := r.withConn(ctx, op, func(conn *sql.Conn) error {
		res, err := scanResource(conn.QueryRowContext(ctx, updateResourceSQL, in.Name, in.Email, id))
		if err != nil {
			return classify(op, err)
		}
		out = res
		return nil
	})
	return out, err
}

// Delete removes the record. A missing id is reported as NotFound.
func (r *ResourceSQLite) Delete(ctx context.Context, id int) error {
	const op = "delete resource"
	return r.withConn(ctx, op, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, deleteResourceSQL, id)
		if err != nil {
			return classify(op, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return classify(op, fmt.Errorf("rows affected: %w", err))
		}
		if n == 0 {
			return notFound(op)
		}
		return nil
	})
}
