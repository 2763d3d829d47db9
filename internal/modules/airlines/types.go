package airlines

// UpsertAirlineDTO creates or curates an airline.
type UpsertAirlineDTO struct {
	Name                *string `json:"name"`
	BrandColorPrimary   *string `json:"brand_color_primary"`
	BrandColorSecondary *string `json:"brand_color_secondary"`
}

// ImportAirlineDTO is one row of a bulk airline import.
type ImportAirlineDTO struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// ImportAirlinesDTO wraps the bulk payload.
type ImportAirlinesDTO struct {
	Airlines []ImportAirlineDTO `json:"airlines" binding:"required"`
}
