package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"notehub/internal/modules/notes/domain"
	notesout "notehub/internal/modules/notes/port/out"
	"notehub/internal/platform/clock"
	apperrors "notehub/internal/platform/errors"
	"notehub/internal/platform/id"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// SQLiteRepository is the durable local store. It assigns ids and
// timestamps on insert, playing the "server" role of the repository
// contract.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
	idGen id.Generator
}

func NewSQLiteRepository(dbPath string, clk clock.Clock, idGen id.Generator) (notesout.Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo := &SQLiteRepository{db: db, clock: clk, idGen: idGen}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS notes (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS notes_user_updated ON notes(user_id, updated_at);
`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]domain.Note, error) {
	const query = `
SELECT id, title, content, created_at, updated_at
FROM notes WHERE user_id = ? ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, draft domain.Note, userID string) (domain.Note, error) {
	now := r.clock.Now()
	note := draft
	note.ID = r.idGen.New()
	note.CreatedAt = now
	note.UpdatedAt = now

	const stmt = `
INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, stmt,
		note.ID, userID, note.Title, note.Content,
		note.CreatedAt.Format(timeLayout), note.UpdatedAt.Format(timeLayout))
	if err != nil {
		return domain.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return note, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, note domain.Note) (domain.Note, error) {
	const stmt = `
UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, stmt,
		note.Title, note.Content, note.UpdatedAt.Format(timeLayout), note.ID)
	if err != nil {
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
	if affected == 0 {
		return domain.Note{}, fmt.Errorf("note %s: %w", note.ID, apperrors.ErrNotFound)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`, note.ID)
	return scanNote(row)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("note %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (domain.Note, error) {
	var note domain.Note
	var createdAt, updatedAt string
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &createdAt, &updatedAt); err != nil {
		return domain.Note{}, fmt.Errorf("scan note: %w", err)
	}
	var err error
	if note.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return domain.Note{}, fmt.Errorf("parse created_at: %w", err)
	}
	if note.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return domain.Note{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return note, nil
}
