package models

// Settings represents user settings
type Settings struct {
	WindowDays int    `json:"window_days"` // trailing history window, today included
	Timezone   string `json:"timezone"`    // IANA timezone name or "Local"
}
