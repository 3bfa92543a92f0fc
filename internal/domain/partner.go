package domain

import "time"

type PartnerStatus string

const (
	PartnerActive   PartnerStatus = "active"
	PartnerDisabled PartnerStatus = "disabled"
)

// Partner is a third-party site embedding the booking widget. The widget key
// is the opaque credential the public embed endpoints are keyed by.
type Partner struct {
	ID           int64         `json:"id"`
	TenantID     string        `json:"tenant_id"`
	Name         string        `json:"name" validate:"required"`
	ContactEmail string        `json:"contact_email,omitempty"`
	SiteDomain   string        `json:"site_domain,omitempty"`
	WidgetKey    string        `json:"widget_key"`
	LayoutID     *string       `json:"layout_id,omitempty"`
	Status       PartnerStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
