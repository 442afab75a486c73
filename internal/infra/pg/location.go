package pg

import (
	"context"

	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l *catalog.Location) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO locations (id, name, code, terminals)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		l.ID, l.Name, l.Code, l.Terminals,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return wrapErr("failed to create location", err)
	}
	return nil
}

func (r *LocationRepository) Update(ctx context.Context, l *catalog.Location) error {
	err := r.db.QueryRow(ctx, `
		UPDATE locations
		SET name = $2, code = $3, terminals = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		l.ID, l.Name, l.Code, l.Terminals,
	).Scan(&l.UpdatedAt)
	if err != nil {
		return wrapErr("failed to update location", err)
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete location", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Location, error) {
	var l catalog.Location
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, terminals, created_at, updated_at
		FROM locations WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Code, &l.Terminals, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, wrapErr("failed to find location", err)
	}
	return &l, nil
}

func (r *LocationRepository) FindAll(ctx context.Context) ([]*catalog.Location, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, code, terminals, created_at, updated_at
		FROM locations ORDER BY name`)
	if err != nil {
		return nil, wrapErr("failed to list locations", err)
	}
	defer rows.Close()

	var locations []*catalog.Location
	for rows.Next() {
		var l catalog.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Code, &l.Terminals, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, wrapErr("failed to scan location", err)
		}
		locations = append(locations, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to read locations", err)
	}
	return locations, nil
}
