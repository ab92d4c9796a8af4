package cart

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(sessionID string) (Cart, error) {
	var (
		raw       []byte
		updatedAt sql.NullString
	)
	err := r.db.QueryRow(`SELECT items, updated_at FROM carts WHERE session_id = $1`, sessionID).Scan(&raw, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}

	c := Cart{SessionID: sessionID}
	if updatedAt.Valid {
		c.UpdatedAt = updatedAt.String
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.Items); err != nil {
			return Cart{}, err
		}
	}
	return c, nil
}

func (r *PostgresRepository) Save(c Cart) (Cart, error) {
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return Cart{}, err
	}

	_, err = r.db.Exec(`INSERT INTO carts (session_id, items, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (session_id) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`,
		c.SessionID, itemsJSON, c.UpdatedAt)
	if err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Clear(sessionID string, updatedAt string) error {
	res, err := r.db.Exec(`UPDATE carts SET items = '[]', updated_at = $1 WHERE session_id = $2`, updatedAt, sessionID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
