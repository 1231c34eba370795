package layout

// CalculatePopupWidth computes the popup width: WidthPercent of the
// terminal, clamped to [MinWidth, MaxWidth] and never wider than the
// terminal minus a small margin.
func CalculatePopupWidth(terminalWidth int, cfg PopupConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100
	width = max(cfg.MinWidth, min(width, cfg.MaxWidth))
	width = min(width, terminalWidth-4)
	return max(width, 1)
}

// CalculateListHeight computes how many list rows fit. Returns at least
// MinListHeight.
func CalculateListHeight(terminalHeight int, cfg PopupConfig) int {
	return max(terminalHeight-cfg.HeightReduction, cfg.MinListHeight)
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	return max(0, min(offset, total-viewportHeight))
}
