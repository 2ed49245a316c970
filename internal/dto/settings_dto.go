package dto

type UpdateSettingsRequest struct {
	ShopName   string  `json:"shop_name"   validate:"required,min=2"`
	LogoURL    *string `json:"logo_url"    validate:"omitempty,url"`
	Address    *string `json:"address"`
	Currency   string  `json:"currency"    validate:"required,min=1,max=8"`
	IncludeTax bool    `json:"include_tax"`
}

type SettingsResponse struct {
	ShopName   string  `json:"shop_name"`
	LogoURL    *string `json:"logo_url"`
	Address    *string `json:"address"`
	Currency   string  `json:"currency"`
	IncludeTax bool    `json:"include_tax"`
}
