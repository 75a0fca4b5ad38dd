package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/promptsmith/internal/domain"
)

// SQLitePromptRepo implements PromptRepo using a SQLite database.
type SQLitePromptRepo struct {
	db *sql.DB
}

// NewSQLitePromptRepo creates a new SQLitePromptRepo.
func NewSQLitePromptRepo(db *sql.DB) *SQLitePromptRepo {
	return &SQLitePromptRepo{db: db}
}

func (r *SQLitePromptRepo) Create(ctx context.Context, p *domain.PromptRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO prompts (id, name, description, content, category, use_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.Content,
		p.Category,
		p.UseCount,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting prompt: %w", err)
	}

	if err := insertTags(ctx, tx, p.ID, p.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing prompt insert: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLitePromptRepo) GetByID(ctx context.Context, id string) (*domain.PromptRecord, error) {
	query := `SELECT id, name, description, content, category, use_count, created_at, updated_at
		FROM prompts WHERE id = ?`
	return r.getOne(ctx, query, id)
}

func (r *SQLitePromptRepo) GetByName(ctx context.Context, name string) (*domain.PromptRecord, error) {
	query := `SELECT id, name, description, content, category, use_count, created_at, updated_at
		FROM prompts WHERE name = ?`
	return r.getOne(ctx, query, name)
}

func (r *SQLitePromptRepo) List(ctx context.Context, category string) ([]*domain.PromptRecord, error) {
	query := `SELECT id, name, description, content, category, use_count, created_at, updated_at
		FROM prompts`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	defer rows.Close()
	return r.scanPrompts(ctx, rows)
}

func (r *SQLitePromptRepo) Search(ctx context.Context, term string) ([]*domain.PromptRecord, error) {
	query := `SELECT id, name, description, content, category, use_count, created_at, updated_at
		FROM prompts
		WHERE name LIKE ? OR description LIKE ? OR content LIKE ?
		ORDER BY use_count DESC, name`
	pattern := "%" + term + "%"
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching prompts: %w", err)
	}
	defer rows.Close()
	return r.scanPrompts(ctx, rows)
}

func (r *SQLitePromptRepo) ListByTag(ctx context.Context, tag string) ([]*domain.PromptRecord, error) {
	query := `SELECT p.id, p.name, p.description, p.content, p.category, p.use_count, p.created_at, p.updated_at
		FROM prompts p
		JOIN prompt_tags t ON p.id = t.prompt_id
		WHERE t.tag = ?
		ORDER BY p.name`
	rows, err := r.db.QueryContext(ctx, query, tag)
	if err != nil {
		return nil, fmt.Errorf("listing prompts by tag: %w", err)
	}
	defer rows.Close()
	return r.scanPrompts(ctx, rows)
}

func (r *SQLitePromptRepo) Update(ctx context.Context, p *domain.PromptRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `UPDATE prompts SET name = ?, description = ?, content = ?, category = ?, use_count = ?, updated_at = ?
		WHERE id = ?`
	res, err := tx.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.Content,
		p.Category,
		p.UseCount,
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating prompt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prompt: %w", ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM prompt_tags WHERE prompt_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing prompt tags: %w", err)
	}
	if err := insertTags(ctx, tx, p.ID, p.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing prompt update: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLitePromptRepo) IncrementUseCount(ctx context.Context, id string) error {
	query := `UPDATE prompts SET use_count = use_count + 1, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("incrementing use count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prompt: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLitePromptRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM prompts WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prompt: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLitePromptRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM prompts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting prompts: %w", err)
	}
	return n, nil
}

func (r *SQLitePromptRepo) getOne(ctx context.Context, query string, arg any) (*domain.PromptRecord, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	p, err := r.scanPrompt(row)
	if err != nil {
		return nil, err
	}
	p.Tags, err = r.loadTags(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// scanPrompt scans a single prompt from a *sql.Row.
func (r *SQLitePromptRepo) scanPrompt(row *sql.Row) (*domain.PromptRecord, error) {
	var p domain.PromptRecord
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Content, &p.Category, &p.UseCount, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prompt: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prompt: %w", err)
	}

	return r.populatePrompt(&p, createdAtStr, updatedAtStr)
}

// scanPrompts scans multiple prompts from *sql.Rows and loads their tags.
func (r *SQLitePromptRepo) scanPrompts(ctx context.Context, rows *sql.Rows) ([]*domain.PromptRecord, error) {
	var prompts []*domain.PromptRecord
	for rows.Next() {
		var p domain.PromptRecord
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Content, &p.Category, &p.UseCount, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning prompt row: %w", err)
		}

		prompt, parseErr := r.populatePrompt(&p, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		prompts = append(prompts, prompt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompts: %w", err)
	}

	for _, p := range prompts {
		tags, err := r.loadTags(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Tags = tags
	}
	return prompts, nil
}

// populatePrompt fills in parsed fields on a PromptRecord after scanning raw strings.
func (r *SQLitePromptRepo) populatePrompt(p *domain.PromptRecord, createdAtStr, updatedAtStr string) (*domain.PromptRecord, error) {
	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}

func (r *SQLitePromptRepo) loadTags(ctx context.Context, promptID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tag FROM prompt_tags WHERE prompt_id = ?`, promptID)
	if err != nil {
		return nil, fmt.Errorf("loading prompt tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	sort.Strings(tags)
	return tags, nil
}

func insertTags(ctx context.Context, tx *sql.Tx, promptID string, tags []string) error {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO prompt_tags (prompt_id, tag) VALUES (?, ?)`, promptID, tag); err != nil {
			return fmt.Errorf("inserting prompt tag %q: %w", tag, err)
		}
	}
	return nil
}
