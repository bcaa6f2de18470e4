package db_models

// Well-known setting keys. Values are stored as strings; numeric
// settings are parsed at the point of use.
const (
	SettingDefaultAccessDays = "default_access_duration_days"
	SettingProgramPriceMinor = "program_price_minor"
	SettingProgramCurrency   = "program_currency"
)

type AppSetting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex"`
	Value string
}
