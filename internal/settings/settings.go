package settings

// StoreSettings is the single-row store configuration the storefront theme
// and static pages read.
type StoreSettings struct {
	StoreName             string `json:"store_name"`
	StoreDescription      string `json:"store_description"`
	StoreSlogan           string `json:"store_slogan"`
	LogoURL               string `json:"logo_url,omitempty"`
	BannerURL             string `json:"banner_url,omitempty"`
	CurrencySymbol        string `json:"currency_symbol"`
	ContactEmail          string `json:"contact_email,omitempty"`
	ContactPhone          string `json:"contact_phone,omitempty"`
	EstimatedDeliveryDays int    `json:"estimated_delivery_days"`
	EnableReviews         bool   `json:"enable_reviews"`
	UpdatedAt             string `json:"updated_at,omitempty"`
}

// Defaults are served when no settings row exists yet, so the storefront
// renders before the admin saves anything.
func Defaults() StoreSettings {
	return StoreSettings{
		StoreName:             "TechStore",
		StoreDescription:      "Os melhores produtos com qualidade garantida",
		StoreSlogan:           "Tecnologia que transforma sua vida",
		CurrencySymbol:        "R$",
		EstimatedDeliveryDays: 7,
		EnableReviews:         true,
	}
}
