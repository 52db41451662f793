package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "healthlog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/healthlog/healthlog.db"
	Version            = "v0.3.0"

	// EnvConnectionString holds a full PostgreSQL connection string, credentials included
	EnvConnectionString = "HEALTHLOG_DB_CONNECTION"

	// DateFormat is the storage key date format (yyyy-MM-dd)
	DateFormat = "2006-01-02"

	// MonthFormat is used by the calendar view (yyyy-MM)
	MonthFormat = "2006-01"

	// EntryTimeFormat is the human readable creation time stored on each entry (h:mm a)
	EntryTimeFormat = "3:04 PM"

	// HealthKeyPrefix namespaces day logs in the key-value store
	HealthKeyPrefix = "health_"

	// SettingsKeyPrefix namespaces user settings, outside the health namespace
	SettingsKeyPrefix = "settings_"

	// Entry scale bounds and form defaults
	MinScale           = 1
	MaxScale           = 10
	DefaultMood        = 5
	DefaultStress      = 5
	DefaultAnger       = 5
	DefaultHealthScore = 5

	// Free text caps, counted in runes
	MaxNoteLength  = 1000
	MaxFeverLength = 64

	// History window
	MinWindowDays       = 1
	MaxWindowDays       = 365
	HistoryReadLimit    = 8
	DefaultStoreTimeout = 10 * time.Second
	LockfileName        = "healthlog.lock"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateTrack
	StateHistory
	StateSettings
	StateConfirmClear
	StateEditSettings
)
