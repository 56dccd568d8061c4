package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countInfo   *widget.Label
	storageInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countInfo = widget.NewLabel("Entries: --")
	sb.storageInfo = widget.NewLabel("Storage: --")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countInfo,
		widget.NewSeparator(),
		sb.storageInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetEntryCount updates the entry counter
func (sb *StatusBar) SetEntryCount(n int) {
	sb.countInfo.SetText(fmt.Sprintf("Entries: %d", n))
}

// GetEntryCount returns the counter caption
func (sb *StatusBar) GetEntryCount() string {
	return sb.countInfo.Text
}

// SetStoragePath shows which database file is open
func (sb *StatusBar) SetStoragePath(path string) {
	sb.storageInfo.SetText("Storage: " + path)
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.countInfo.SetText("Entries: --")
	sb.storageInfo.SetText("Storage: --")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
