package constants

const (
	SettingWindowDays = SettingsKeyPrefix + "window_days"
	SettingTimezone   = SettingsKeyPrefix + "timezone"

	// DefaultWindowDays is the trailing history window, today included
	DefaultWindowDays = 30
	DefaultTimezone   = "Local" // Use system local timezone by default
)
