package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLink     = "↗"
	IconRemove   = "🗑"
	IconSortAsc  = "▲"
	IconSortDesc = "▼"
)

// Preview control labels per state
const (
	PlayLabel    = "Play"
	StopLabel    = "Stop"
	LoadingLabel = "Loading…"
	ErrorLabel   = "Error!"
)

// Row action labels
const (
	EnableLabel  = "Enable"
	DisableLabel = "Disable"
)

// Filter placeholder options
const (
	AllTagsOption     = "All tags"
	AllLicensesOption = "All licenses"
)

// Column sizing (header and rows share these)
const (
	PreviewColWidth  float32 = 88
	TitleColWidth    float32 = 170
	AuthorColWidth   float32 = 110
	DurationColWidth float32 = 64
	DescColWidth     float32 = 230
	LicenseColWidth  float32 = 100
	TagsColWidth     float32 = 150
)

// Dialog sizing
const (
	SearchDialogWidth    float32 = 620
	SearchDialogHeight   float32 = 480
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)
