package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"songvault/internal/common"
	"songvault/internal/domain/model"
)

type SongRepository interface {
	Create(ctx context.Context, song *model.Song) error
	FindByID(ctx context.Context, id int64) (*model.Song, error)
	ListByTitle(ctx context.Context) ([]model.Song, error)
	Update(ctx context.Context, song *model.Song) error
	Delete(ctx context.Context, id int64) error
}

type pgSongRepository struct {
	db *sql.DB
}

func NewPgSongRepository(db *sql.DB) SongRepository {
	return &pgSongRepository{db: db}
}

func (r *pgSongRepository) Create(ctx context.Context, song *model.Song) error {
	query := `INSERT INTO songs (title, artist)
	          VALUES ($1, $2)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, song.Title, song.Artist).Scan(
		&song.ID, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgSongRepository.Create: %w", err)
	}
	return nil
}

func (r *pgSongRepository) FindByID(ctx context.Context, id int64) (*model.Song, error) {
	query := `SELECT id, title, artist, created_at, updated_at
	          FROM songs WHERE id = $1`
	song := &model.Song{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&song.ID, &song.Title, &song.Artist, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgSongRepository.FindByID: %w", err)
	}
	return song, nil
}

func (r *pgSongRepository) ListByTitle(ctx context.Context) ([]model.Song, error) {
	query := `SELECT id, title, artist, created_at, updated_at
	          FROM songs ORDER BY title ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgSongRepository.ListByTitle query: %w", err)
	}
	defer rows.Close()

	songs := []model.Song{}
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgSongRepository.ListByTitle scan: %w", err)
		}
		songs = append(songs, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSongRepository.ListByTitle rows.Err: %w", err)
	}
	return songs, nil
}

func (r *pgSongRepository) Update(ctx context.Context, song *model.Song) error {
	query := `UPDATE songs SET title = $1, artist = $2, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, song.Title, song.Artist, song.ID)
	if err != nil {
		return fmt.Errorf("pgSongRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgSongRepository.Update rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgSongRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM songs WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pgSongRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgSongRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
