// Package layout holds the sizing rules of the popup.
package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Popup PopupConfig
	Input InputConfig
	Text  TextConfig
}

// PopupConfig holds popup dimension configuration.
type PopupConfig struct {
	// WidthPercent is the popup width as percentage of terminal width.
	WidthPercent int

	// MinWidth and MaxWidth clamp the popup width in characters.
	MinWidth int
	MaxWidth int

	// HeightReduction is subtracted from terminal height for the list.
	// Accounts for: padding (2) + header (2) + tab (3) + controls (2) + status (1) + hints (2) = 12
	HeightReduction int

	// MinListHeight is the minimum number of list rows shown.
	MinListHeight int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	PageCharLimit int
	PageWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Popup: PopupConfig{
			WidthPercent:    60,
			MinWidth:        40,
			MaxWidth:        80,
			HeightReduction: 12,
			MinListHeight:   3,
		},
		Input: InputConfig{
			PageCharLimit: 6,
			PageWidth:     6,
		},
		Text: TextConfig{
			Ellipsis: "…",
		},
	}
}
