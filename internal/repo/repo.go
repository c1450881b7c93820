package repo

import (
	"context"
	"database/sql"
	"encoding/json"
)

type Preset struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Inputs json.RawMessage `json:"inputs"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SavePreset(ctx context.Context, userID int, name string, inputs json.RawMessage) (int, error)
	ListPresets(ctx context.Context, userID int) ([]Preset, error)
	GetPreset(ctx context.Context, userID, presetID int) (Preset, error)
	DeletePreset(ctx context.Context, userID, presetID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SavePreset(ctx context.Context, userID int, name string, inputs json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO presets (user_id, name, inputs) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, name) DO UPDATE SET inputs = EXCLUDED.inputs
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name, inputs).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListPresets(ctx context.Context, userID int) ([]Preset, error) {
	query := "SELECT id, name, inputs FROM presets WHERE user_id=$1 ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var p Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.Inputs); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *PostgresRepository) GetPreset(ctx context.Context, userID, presetID int) (Preset, error) {
	var p Preset
	query := "SELECT id, name, inputs FROM presets WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, presetID).Scan(&p.ID, &p.Name, &p.Inputs)
	return p, err
}

func (r *PostgresRepository) DeletePreset(ctx context.Context, userID, presetID int) error {
	query := "DELETE FROM presets WHERE user_id=$1 AND id=$2"
	_, err := r.db.ExecContext(ctx, query, userID, presetID)
	return err
}
