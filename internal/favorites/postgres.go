package favorites

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"weatherpoint/internal/apperr"
)

const schema = `
	CREATE TABLE IF NOT EXISTS favorite_locations (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// PostgresRepository is a Repository backed by a Postgres table.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository connects to Postgres, verifies the connection,
// and creates the favorites table when it does not exist.
func NewPostgresRepository(connectionString string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create favorites table: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close releases the underlying connection pool
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresRepository) Insert(fav *FavoriteLocation) error {
	query := `
		INSERT INTO favorite_locations (name, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, fav.Name, fav.Latitude, fav.Longitude).
		Scan(&fav.ID, &fav.CreatedAt, &fav.UpdatedAt)
}

func (r *PostgresRepository) Get(id int64) (*FavoriteLocation, error) {
	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM favorite_locations
		WHERE id = $1
	`

	var fav FavoriteLocation
	err := r.db.QueryRow(query, id).Scan(
		&fav.ID,
		&fav.Name,
		&fav.Latitude,
		&fav.Longitude,
		&fav.CreatedAt,
		&fav.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("favorite %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &fav, nil
}

func (r *PostgresRepository) List() ([]FavoriteLocation, error) {
	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM favorite_locations
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []FavoriteLocation
	for rows.Next() {
		var fav FavoriteLocation
		if err := rows.Scan(
			&fav.ID,
			&fav.Name,
			&fav.Latitude,
			&fav.Longitude,
			&fav.CreatedAt,
			&fav.UpdatedAt,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}

	return favorites, rows.Err()
}

func (r *PostgresRepository) Update(fav *FavoriteLocation) error {
	query := `
		UPDATE favorite_locations
		SET name = $2, latitude = $3, longitude = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(query, fav.ID, fav.Name, fav.Latitude, fav.Longitude).
		Scan(&fav.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("favorite %d: %w", fav.ID, apperr.ErrNotFound)
	}
	return err
}

func (r *PostgresRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM favorite_locations WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("favorite %d: %w", id, apperr.ErrNotFound)
	}

	return nil
}
