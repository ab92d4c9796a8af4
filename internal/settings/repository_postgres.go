package settings

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("settings not found")

// Repository provides access to the store settings row.
type Repository interface {
	Get() (StoreSettings, error)
	Save(s StoreSettings) (StoreSettings, error)
}

type PostgresRepository struct {
	db *sql.DB
}

const (
	getSettingsQuery = `
		SELECT store_name, store_description, store_slogan, logo_url, banner_url, currency_symbol, contact_email, contact_phone, estimated_delivery_days, enable_reviews, updated_at
		FROM store_settings
		WHERE id = 1
	`
	upsertSettingsQuery = `
		INSERT INTO store_settings (id, store_name, store_description, store_slogan, logo_url, banner_url, currency_symbol, contact_email, contact_phone, estimated_delivery_days, enable_reviews, updated_at)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			store_description = EXCLUDED.store_description,
			store_slogan = EXCLUDED.store_slogan,
			logo_url = EXCLUDED.logo_url,
			banner_url = EXCLUDED.banner_url,
			currency_symbol = EXCLUDED.currency_symbol,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			estimated_delivery_days = EXCLUDED.estimated_delivery_days,
			enable_reviews = EXCLUDED.enable_reviews,
			updated_at = EXCLUDED.updated_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get() (StoreSettings, error) {
	var s StoreSettings
	err := r.db.QueryRow(getSettingsQuery).Scan(
		&s.StoreName, &s.StoreDescription, &s.StoreSlogan, &s.LogoURL, &s.BannerURL,
		&s.CurrencySymbol, &s.ContactEmail, &s.ContactPhone, &s.EstimatedDeliveryDays,
		&s.EnableReviews, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return StoreSettings{}, ErrNotFound
		}
		return StoreSettings{}, err
	}
	return s, nil
}

func (r *PostgresRepository) Save(s StoreSettings) (StoreSettings, error) {
	_, err := r.db.Exec(upsertSettingsQuery,
		s.StoreName, s.StoreDescription, s.StoreSlogan, s.LogoURL, s.BannerURL,
		s.CurrencySymbol, s.ContactEmail, s.ContactPhone, s.EstimatedDeliveryDays,
		s.EnableReviews, s.UpdatedAt)
	if err != nil {
		return StoreSettings{}, err
	}
	return s, nil
}
