package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"faith-walk/internal/models"
)

// EntryGrid renders entries as read-only rows with Edit and Delete actions.
// Rows are keyed by entry id, so removing one never touches its siblings.
type EntryGrid struct {
	container *fyne.Container
	scroll    *container.Scroll
	header    *fyne.Container
	body      *fyne.Container
	emptyHint *widget.Label

	rows map[int64]*gridRow

	// Event handlers
	editHandler   func(id int64)
	deleteHandler func(id int64)
}

type gridRow struct {
	entry        models.Entry
	container    *fyne.Container
	cells        map[models.Field]*widget.Label
	editButton   *widget.Button
	deleteButton *widget.Button
}

// NewEntryGrid creates an empty grid
func NewEntryGrid() *EntryGrid {
	g := &EntryGrid{rows: make(map[int64]*gridRow)}
	g.createComponents()
	g.buildLayout()
	return g
}

func columnCount() int {
	return len(models.Fields()) + 2
}

// createComponents initializes the header and placeholder
func (g *EntryGrid) createComponents() {
	headers := make([]fyne.CanvasObject, 0, columnCount())
	for _, f := range models.Fields() {
		headers = append(headers, widget.NewLabelWithStyle(f.Label(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	headers = append(headers, widget.NewLabel(""), widget.NewLabel(""))
	g.header = container.NewGridWithColumns(columnCount(), headers...)

	g.body = container.NewVBox()
	g.emptyHint = widget.NewLabel("No entries yet. Add one from the Update tab.")
}

// buildLayout constructs the scrolling grid
func (g *EntryGrid) buildLayout() {
	g.container = container.NewVBox(g.header, widget.NewSeparator(), g.emptyHint, g.body)
	g.scroll = container.NewScroll(g.container)
}

// SetEditHandler sets the handler for a row's Edit button
func (g *EntryGrid) SetEditHandler(handler func(id int64)) {
	g.editHandler = handler
}

// SetDeleteHandler sets the handler for a row's Delete button
func (g *EntryGrid) SetDeleteHandler(handler func(id int64)) {
	g.deleteHandler = handler
}

// SetEntries replaces every row with the given entries, in order.
func (g *EntryGrid) SetEntries(entries []models.Entry) {
	g.body.RemoveAll()
	g.rows = make(map[int64]*gridRow, len(entries))
	for _, entry := range entries {
		g.addRow(entry)
	}
	g.syncEmptyHint()
	g.body.Refresh()
}

// AppendEntry adds one row at the bottom.
func (g *EntryGrid) AppendEntry(entry models.Entry) {
	if _, exists := g.rows[entry.ID]; exists {
		g.UpdateEntry(entry)
		return
	}
	g.addRow(entry)
	g.syncEmptyHint()
	g.body.Refresh()
}

// UpdateEntry rewrites the displayed text of an existing row in place.
func (g *EntryGrid) UpdateEntry(entry models.Entry) bool {
	row, ok := g.rows[entry.ID]
	if !ok {
		return false
	}
	row.entry = entry
	for f, cell := range row.cells {
		cell.SetText(entry.Get(f))
	}
	return true
}

// RemoveEntry drops the row for id.
func (g *EntryGrid) RemoveEntry(id int64) bool {
	row, ok := g.rows[id]
	if !ok {
		return false
	}
	g.body.Remove(row.container)
	delete(g.rows, id)
	g.syncEmptyHint()
	return true
}

// Entry returns the entry currently shown for id.
func (g *EntryGrid) Entry(id int64) (models.Entry, bool) {
	row, ok := g.rows[id]
	if !ok {
		return models.Entry{}, false
	}
	return row.entry, true
}

// Len returns the number of rows.
func (g *EntryGrid) Len() int {
	return len(g.rows)
}

// IDs returns row ids in display order.
func (g *EntryGrid) IDs() []int64 {
	ids := make([]int64, 0, len(g.rows))
	for _, obj := range g.body.Objects {
		for id, row := range g.rows {
			if row.container == obj {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

// GetContainer returns the scrollable grid
func (g *EntryGrid) GetContainer() fyne.CanvasObject {
	return g.scroll
}

func (g *EntryGrid) addRow(entry models.Entry) {
	id := entry.ID
	row := &gridRow{
		entry: entry,
		cells: make(map[models.Field]*widget.Label, len(models.Fields())),
	}

	objects := make([]fyne.CanvasObject, 0, columnCount())
	for _, f := range models.Fields() {
		cell := widget.NewLabel(entry.Get(f))
		cell.Truncation = fyne.TextTruncateEllipsis
		row.cells[f] = cell
		objects = append(objects, cell)
	}

	row.editButton = widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() {
		if g.editHandler != nil {
			g.editHandler(id)
		}
	})
	row.deleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		if g.deleteHandler != nil {
			g.deleteHandler(id)
		}
	})
	row.deleteButton.Importance = widget.DangerImportance
	objects = append(objects, row.editButton, row.deleteButton)

	row.container = container.NewGridWithColumns(columnCount(), objects...)
	g.rows[id] = row
	g.body.Add(row.container)
}

func (g *EntryGrid) syncEmptyHint() {
	if len(g.rows) == 0 {
		g.emptyHint.Show()
	} else {
		g.emptyHint.Hide()
	}
}
