package layout

// Degradation holds flags indicating which card and menu details should be
// hidden on small terminals.
type Degradation struct {
	HideSubtitles  bool // Drop the card subtitle line (height < SubtitleHideHeight)
	HideIcons      bool // Drop menu row icons (width < IconHideWidth)
	HideHints      bool // Drop the gesture hint in cards (width < HintHideWidth)
	ShowMinWarning bool // Terminal is below MinWidth/MinHeight
}

// Threshold constants for degradation
const (
	SubtitleHideHeight = 20
	IconHideWidth      = 50
	HintHideWidth      = 60
)

// ComputeDegradation calculates which details should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideSubtitles:  c.TerminalHeight < SubtitleHideHeight,
		HideIcons:      c.TerminalWidth < IconHideWidth,
		HideHints:      c.TerminalWidth < HintHideWidth,
		ShowMinWarning: c.ShowMinWarning,
	}
}

// IsCompactMode returns true if cards use the compact height.
func (d Degradation) IsCompactMode() bool {
	return d.HideSubtitles
}

// CardHeight returns the card height for the degradation level.
func (d Degradation) CardHeight() int {
	if d.IsCompactMode() {
		return CardCompactHeight
	}
	return CardHeight
}
