package settings

type UpdateSettingsRequest struct {
	CompanyName  string `json:"company_name"`
	Currency     string `json:"currency" validate:"omitempty,len=3"`
	CountryCode  string `json:"country_code" validate:"omitempty,len=2"`
	DistanceUnit string `json:"distance_unit" validate:"omitempty,oneof=km mi"`
	SupportEmail string `json:"support_email" validate:"omitempty,email"`
	SupportPhone string `json:"support_phone"`
}
