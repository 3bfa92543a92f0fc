package domain

import "time"

// Settings is the per-tenant configuration record behind the dashboard
// settings screen. One row per tenant, upserted as a whole.
type Settings struct {
	ID           int64  `json:"id"`
	TenantID     string `json:"tenant_id"`
	CompanyName  string `json:"company_name,omitempty"`
	Currency     string `json:"currency,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	DistanceUnit string `json:"distance_unit,omitempty"`
	SupportEmail string `json:"support_email,omitempty"`
	SupportPhone string `json:"support_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
