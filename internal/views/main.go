package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"faith-walk/internal/controllers"
	"faith-walk/internal/models"
	"faith-walk/internal/views/components"
)

// MainView is the two-tab journal window: a View tab with the entry grid
// and an Update tab with the entry form.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	tabs          *container.AppTabs
	viewTab       *container.TabItem
	updateTab     *container.TabItem
	grid          *components.EntryGrid
	form          *components.EntryForm
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	editHandler        func(id int64)
	deleteHandler      func(id int64)
	submitHandler      func(models.Entry)
	cancelHandler      func()
	tabSelectedHandler func(controllers.Tab) bool

	// confirm and showError are swapped out in tests.
	confirm   func(title, message string, callback func(bool))
	showError func(title string, err error)
}

var _ controllers.View = (*MainView)(nil)

// NewMainView creates the main view and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{window: window}
	view.confirm = func(title, message string, callback func(bool)) {
		dialog.ShowConfirm(title, message, callback, view.window)
	}
	view.showError = func(title string, err error) {
		dialog.ShowError(fmt.Errorf("%s: %w", title, err), view.window)
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.grid = components.NewEntryGrid()
	mv.form = components.NewEntryForm()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	title := canvas.NewText("FAITH WALK...", theme.Color(theme.ColorNameForeground))
	title.TextSize = 30
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	subtitle := widget.NewLabelWithStyle("keeping track of your daily discipleship", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	updateContent := container.NewBorder(
		container.NewVBox(title, subtitle), // top
		nil,                                // bottom
		nil,                                // left
		nil,                                // right
		mv.form.GetContainer(),             // center
	)

	mv.viewTab = container.NewTabItemWithIcon("View", theme.ListIcon(), mv.grid.GetContainer())
	mv.updateTab = container.NewTabItemWithIcon("Update", theme.DocumentCreateIcon(), updateContent)
	mv.tabs = container.NewAppTabs(mv.viewTab, mv.updateTab)

	mv.mainContainer = container.NewBorder(
		nil,                         // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.tabs,                     // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.grid.SetEditHandler(func(id int64) {
		if mv.editHandler != nil {
			mv.editHandler(id)
		}
	})

	mv.grid.SetDeleteHandler(mv.confirmDelete)

	mv.form.SetSubmitHandler(func(entry models.Entry) {
		if mv.submitHandler != nil {
			mv.submitHandler(entry)
		}
	})

	mv.form.SetCancelHandler(func() {
		if mv.cancelHandler != nil {
			mv.cancelHandler()
		}
	})

	mv.tabs.OnSelected = func(item *container.TabItem) {
		if mv.tabSelectedHandler != nil {
			mv.tabSelectedHandler(mv.tabFor(item))
		}
	}
}

func (mv *MainView) confirmDelete(id int64) {
	entry, ok := mv.grid.Entry(id)
	if !ok {
		return
	}

	message := fmt.Sprintf("Delete entry #%d", id)
	if entry.Name != "" || entry.Date != "" {
		message += fmt.Sprintf(" (%s, %s)", entry.Name, entry.Date)
	}
	message += "?"

	mv.confirm("Delete entry", message, func(confirmed bool) {
		if confirmed && mv.deleteHandler != nil {
			mv.deleteHandler(id)
		}
	})
}

func (mv *MainView) tabFor(item *container.TabItem) controllers.Tab {
	if item == mv.updateTab {
		return controllers.TabUpdate
	}
	return controllers.TabView
}

// Event handler setters - called while wiring the controller

// SetEditHandler sets the handler for a row's Edit action
func (mv *MainView) SetEditHandler(handler func(id int64)) {
	mv.editHandler = handler
}

// SetDeleteHandler sets the handler run after the user confirms a delete
func (mv *MainView) SetDeleteHandler(handler func(id int64)) {
	mv.deleteHandler = handler
}

// SetSubmitHandler sets the handler for the form's Submit button
func (mv *MainView) SetSubmitHandler(handler func(models.Entry)) {
	mv.submitHandler = handler
}

// SetCancelHandler sets the handler for the form's Cancel button
func (mv *MainView) SetCancelHandler(handler func()) {
	mv.cancelHandler = handler
}

// SetTabSelectedHandler sets the handler consulted on every tab change
func (mv *MainView) SetTabSelectedHandler(handler func(controllers.Tab) bool) {
	mv.tabSelectedHandler = handler
}

// UI update methods - called by controller

// ShowEntries replaces the grid contents
func (mv *MainView) ShowEntries(entries []models.Entry) {
	mv.grid.SetEntries(entries)
	mv.statusBar.SetEntryCount(mv.grid.Len())
}

// AppendEntry adds a row for a newly created entry
func (mv *MainView) AppendEntry(entry models.Entry) {
	mv.grid.AppendEntry(entry)
	mv.statusBar.SetEntryCount(mv.grid.Len())
}

// ReplaceEntry rewrites an existing row in place
func (mv *MainView) ReplaceEntry(entry models.Entry) {
	mv.grid.UpdateEntry(entry)
}

// RemoveEntry drops a row
func (mv *MainView) RemoveEntry(id int64) {
	mv.grid.RemoveEntry(id)
	mv.statusBar.SetEntryCount(mv.grid.Len())
}

// FillForm loads an entry into the form
func (mv *MainView) FillForm(entry models.Entry) {
	mv.form.Fill(entry)
}

// ClearForm empties the form
func (mv *MainView) ClearForm() {
	mv.form.Clear()
}

// SetEditing updates the form's mode caption
func (mv *MainView) SetEditing(id int64) {
	mv.form.SetEditing(id)
}

// SelectTab activates a tab
func (mv *MainView) SelectTab(tab controllers.Tab) {
	switch tab {
	case controllers.TabUpdate:
		mv.tabs.Select(mv.updateTab)
	default:
		mv.tabs.Select(mv.viewTab)
	}
}

// SelectedTab returns the active tab
func (mv *MainView) SelectedTab() controllers.Tab {
	return mv.tabFor(mv.tabs.Selected())
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetStoragePath shows the open database file in the status bar
func (mv *MainView) SetStoragePath(path string) {
	mv.statusBar.SetStoragePath(path)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	mv.statusBar.SetStatus(title)
	mv.showError(title, err)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	mv.confirm(title, message, callback)
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the window this view renders into
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the root container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
