package repositories

import (
	"cargo-coverage-service/internal/domain"
	"cargo-coverage-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the EntityStore port.
type SQLEntityStore struct{ DB *sql.DB }

func NewSQLEntityStore(db *sql.DB) *SQLEntityStore {
	return &SQLEntityStore{DB: db}
}

func (s *SQLEntityStore) Get(ctx context.Context, id int64) (*domain.Entity, error) {
	query := `
	SELECT id, name, category, notes
	FROM entities
	WHERE id = ?;
	`
	e := &domain.Entity{}
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Category, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entity: id=%d: %w", id, err)
	}

	return e, nil
}

func (s *SQLEntityStore) GetByName(ctx context.Context, name string) (*domain.Entity, error) {
	query := `
	SELECT id, name, category, notes
	FROM entities
	WHERE name = ?;
	`
	e := &domain.Entity{}
	err := s.DB.QueryRowContext(ctx, query, name).Scan(&e.ID, &e.Name, &e.Category, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entity by name: %w", err)
	}

	return e, nil
}

func (s *SQLEntityStore) List(ctx context.Context, offset, limit int) ([]*domain.Entity, error) {
	query := `
	SELECT id, name, category, notes
	FROM entities
	ORDER BY id
	LIMIT ? OFFSET ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entities: query: %w", err)
	}
	defer rows.Close()

	entities := make([]*domain.Entity, 0, limit)
	for rows.Next() {
		e := &domain.Entity{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Notes); err != nil {
			return nil, fmt.Errorf("list entities: scan row: %w", err)
		}
		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entities: row iteration: %w", err)
	}

	return entities, nil
}

// Create inserts a new entity inside its own transaction. A duplicate
// name rolls back and surfaces ports.ErrUniqueViolation.
func (s *SQLEntityStore) Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create entity: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO entities (name, category, notes)
	VALUES (?, ?, ?);
	`
	res, err := tx.ExecContext(ctx, query, e.Name, e.Category, e.Notes)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create entity: name %q: %w", e.Name, ports.ErrUniqueViolation)
		}
		return nil, fmt.Errorf("create entity: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create entity: last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create entity: commit tx: %w", err)
	}

	created := *e
	created.ID = id
	return &created, nil
}

// UpsertByName overwrites every field of an existing entity with the
// same name, or delegates to Create.
func (s *SQLEntityStore) UpsertByName(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	existing, err := s.GetByName(ctx, e.Name)
	if err != nil {
		return nil, fmt.Errorf("upsert entity: %w", err)
	}
	if existing == nil {
		return s.Create(ctx, e)
	}

	query := `
	UPDATE entities
	SET name = ?, category = ?, notes = ?
	WHERE id = ?;
	`
	if _, err := s.DB.ExecContext(ctx, query, e.Name, e.Category, e.Notes, existing.ID); err != nil {
		return nil, fmt.Errorf("upsert entity: update id=%d: %w", existing.ID, err)
	}

	updated := *e
	updated.ID = existing.ID
	return &updated, nil
}
