package controllers

import (
	"context"
	"errors"
	"fmt"

	"faith-walk/internal/logger"
	"faith-walk/internal/models"
	"faith-walk/internal/storage"
)

const component = "JournalController"

// Tab identifies one of the two main window tabs.
type Tab int

const (
	TabView Tab = iota
	TabUpdate
)

// EntryStore is the storage surface the controller needs.
type EntryStore interface {
	Insert(ctx context.Context, entry models.Entry) (int64, error)
	Update(ctx context.Context, entry models.Entry) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (models.Entry, error)
	List(ctx context.Context) ([]models.Entry, error)
}

// View is everything the controller asks of the window.
type View interface {
	ShowEntries(entries []models.Entry)
	AppendEntry(entry models.Entry)
	ReplaceEntry(entry models.Entry)
	RemoveEntry(id int64)

	FillForm(entry models.Entry)
	ClearForm()
	SetEditing(id int64)

	SelectTab(tab Tab)
	UpdateStatus(status string)
	ShowError(title string, err error)
}

// JournalController turns grid and form events into storage calls and view updates.
// It is driven from the UI event goroutine only.
type JournalController struct {
	ctx    context.Context
	store  EntryStore
	view   View
	logger logger.Logger

	// editingID is models.UnsetID unless the form holds an existing entry.
	editingID int64
}

func NewJournalController(ctx context.Context, store EntryStore, log logger.Logger) *JournalController {
	if log == nil {
		log = logger.NewNop()
	}
	return &JournalController{
		ctx:       ctx,
		store:     store,
		logger:    log,
		editingID: models.UnsetID,
	}
}

// SetView associates the view this controller drives.
func (c *JournalController) SetView(view View) {
	c.view = view
}

// Start loads every entry once and hands them to the view.
func (c *JournalController) Start() error {
	if c.view == nil {
		return fmt.Errorf("journal controller: view not set")
	}

	entries, err := c.store.List(c.ctx)
	if err != nil {
		c.fail("Could not load journal", err)
		return err
	}

	c.view.ShowEntries(entries)
	c.view.UpdateStatus(fmt.Sprintf("%d entries loaded", len(entries)))
	c.logger.Info(component, "journal loaded", map[string]interface{}{"entries": len(entries)})
	return nil
}

// EditingID returns the id of the entry being edited, or models.UnsetID.
func (c *JournalController) EditingID() int64 {
	return c.editingID
}

func (c *JournalController) IsEditing() bool {
	return c.editingID != models.UnsetID
}

// Edit loads the entry into the form and switches to the Update tab.
func (c *JournalController) Edit(id int64) {
	entry, err := c.store.Get(c.ctx, id)
	if err != nil {
		c.fail("Could not open entry", err)
		return
	}

	c.editingID = entry.ID
	c.view.FillForm(entry)
	c.view.SetEditing(entry.ID)
	c.view.SelectTab(TabUpdate)
	c.view.UpdateStatus(fmt.Sprintf("Editing entry #%d", entry.ID))

	c.logger.Debug(component, "edit started", map[string]interface{}{"id": entry.ID})
}

// Delete removes the entry from storage and from the grid.
// Callers confirm with the user before calling it.
func (c *JournalController) Delete(id int64) {
	if err := c.store.Delete(c.ctx, id); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.fail("Could not delete entry", err)
			return
		}
		c.logger.Warning(component, "deleted entry was already gone", map[string]interface{}{"id": id})
	}

	c.view.RemoveEntry(id)
	if c.editingID == id {
		c.resetForm()
	}
	c.view.UpdateStatus(fmt.Sprintf("Entry #%d deleted", id))

	c.logger.Info(component, "entry deleted", map[string]interface{}{"id": id})
}

// Submit creates a new entry, or commits the edit in progress.
func (c *JournalController) Submit(entry models.Entry) {
	if !c.IsEditing() {
		c.create(entry)
		return
	}
	c.commit(entry)
}

func (c *JournalController) create(entry models.Entry) {
	entry.ID = models.UnsetID
	id, err := c.store.Insert(c.ctx, entry)
	if err != nil {
		c.fail("Could not save entry", err)
		return
	}
	entry.ID = id

	c.view.AppendEntry(entry)
	c.view.ClearForm()
	c.view.SelectTab(TabView)
	c.view.UpdateStatus(fmt.Sprintf("Entry #%d added", id))

	c.logger.Info(component, "entry created", map[string]interface{}{"id": id})
}

func (c *JournalController) commit(entry models.Entry) {
	entry.ID = c.editingID
	if err := c.store.Update(c.ctx, entry); err != nil {
		c.fail("Could not update entry", err)
		return
	}

	c.view.ReplaceEntry(entry)
	c.resetForm()
	c.view.SelectTab(TabView)
	c.view.UpdateStatus(fmt.Sprintf("Entry #%d updated", entry.ID))

	c.logger.Info(component, "entry updated", map[string]interface{}{"id": entry.ID})
}

// Cancel drops the form contents without persisting and returns to the grid.
func (c *JournalController) Cancel() {
	wasEditing := c.editingID
	c.resetForm()
	c.view.SelectTab(TabView)
	c.view.UpdateStatus("Ready")

	c.logger.Debug(component, "form cancelled", map[string]interface{}{"editing_id": wasEditing})
}

// TabSelected enforces that the Update tab stays active while an edit is
// in progress. It reports whether the selection was accepted.
func (c *JournalController) TabSelected(tab Tab) bool {
	if tab == TabUpdate || !c.IsEditing() {
		return true
	}

	c.view.SelectTab(TabUpdate)
	c.view.UpdateStatus("Submit or cancel the edit first")
	return false
}

func (c *JournalController) resetForm() {
	c.editingID = models.UnsetID
	c.view.ClearForm()
	c.view.SetEditing(models.UnsetID)
}

func (c *JournalController) fail(title string, err error) {
	c.logger.Error(component, err, map[string]interface{}{"action": title})
	if c.view != nil {
		c.view.ShowError(title, err)
	}
}
