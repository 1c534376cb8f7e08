package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/existflow/taskdeck/internal/model"
)

const projectColumns = "id, name, description, color, created_at, updated_at"

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	var created, updated string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Color, &created, &updated); err != nil {
		return model.Project{}, err
	}
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return p, nil
}

// CreateProject inserts a new project and returns its id.
func (s *Store) CreateProject(ctx context.Context, name, description, color string) (int64, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		name, description, color, ts, ts)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project id: %w", err)
	}
	return id, nil
}

// GetProject fetches a project by id. Returns nil when the project does
// not exist.
func (s *Store) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// GetAllProjects returns all projects, newest first.
func (s *Store) GetAllProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProject applies the patch to a project, stamping updated_at.
// Reports whether a row changed; an empty patch is a no-op.
func (s *Store) UpdateProject(ctx context.Context, id int64, patch model.ProjectPatch) (bool, error) {
	if patch.Empty() {
		return false, nil
	}

	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *patch.Color)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, now(), id)

	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return false, fmt.Errorf("update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteProject removes a project and all its tasks in one transaction.
// Reports whether the project row was removed.
func (s *Store) DeleteProject(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete project: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, id); err != nil {
		return false, fmt.Errorf("delete project tasks: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete project: %w", err)
	}
	return affected > 0, nil
}
