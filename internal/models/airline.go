package models

import "time"

// DefaultBrandColor is the uncurated placeholder for airline brand colors.
const DefaultBrandColor = "#FFFFFF"

// AirlineModel is an airline keyed by its IATA/ICAO code.
type AirlineModel struct {
	Code                string `json:"code"                  gorm:"type:varchar(3);primaryKey"`
	Name                string `json:"name"                  gorm:"not null"`
	BrandColorPrimary   string `json:"brand_color_primary"   gorm:"type:char(7);default:'#FFFFFF'"`
	BrandColorSecondary string `json:"brand_color_secondary" gorm:"type:char(7);default:'#FFFFFF'"`
	// ColorAutoGenerated marks colors derived from the code hash rather than
	// manually curated brand colors; the map may re-derive them at any time.
	ColorAutoGenerated bool      `json:"color_auto_generated" gorm:"default:false"`
	CreatedAt          time.Time `json:"created"`
	UpdatedAt          time.Time `json:"modified"`
}

func (AirlineModel) TableName() string { return "airlines" }

// HasCuratedColor reports whether the primary color is a real brand color.
func (a AirlineModel) HasCuratedColor() bool {
	return !a.ColorAutoGenerated && a.BrandColorPrimary != "" && a.BrandColorPrimary != DefaultBrandColor
}
