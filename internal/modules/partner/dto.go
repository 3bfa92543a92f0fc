package partner

type PartnerRequest struct {
	Name         string  `json:"name" binding:"required"`
	ContactEmail string  `json:"contact_email" binding:"omitempty,email"`
	SiteDomain   string  `json:"site_domain"`
	LayoutID     *string `json:"layout_id"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
