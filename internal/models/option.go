package models

// OptionModel is a key-value row for persisted runtime settings.
// The full settings document lives under the "configs" key as JSON.
type OptionModel struct {
	Base
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:longtext"`
}

func (OptionModel) TableName() string { return "options" }
