package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the bottom bar: key hints and run status.
type FooterModel struct {
	width    int
	paused   bool
	done     bool
	hasError bool
}

// NewFooterModel creates a new footer.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// SetPaused updates the paused indicator.
func (f *FooterModel) SetPaused(paused bool) {
	f.paused = paused
}

// SetDone updates the done indicator.
func (f *FooterModel) SetDone(done bool) {
	f.done = done
}

// SetError marks the run as failed.
func (f *FooterModel) SetError(hasError bool) {
	f.hasError = hasError
}

// View renders the footer.
func (f FooterModel) View() string {
	hints := footerKeyStyle.Render("q") + footerDescStyle.Render(" quit  ") +
		footerKeyStyle.Render("p") + footerDescStyle.Render(" pause  ") +
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart  ") +
		footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" scroll")

	status := f.statusBadge()

	gap := f.width - lipgloss.Width(hints) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}

	return " " + hints + spaces(gap) + status
}

func (f FooterModel) statusBadge() string {
	switch {
	case f.hasError:
		return statusErrorStyle.Render("● ERROR")
	case f.done:
		return statusDoneStyle.Render("● DONE")
	case f.paused:
		return statusPausedStyle.Render("● PAUSED")
	default:
		return statusRunningStyle.Render("● RUNNING")
	}
}
