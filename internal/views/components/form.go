package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"faith-walk/internal/models"
)

// multiLine lists the fields that get a multi-line input.
var multiLine = map[models.Field]bool{
	models.FieldVerse:  true,
	models.FieldAction: true,
}

// EntryForm collects one value per entry field.
type EntryForm struct {
	container    *fyne.Container
	form         *widget.Form
	modeLabel    *widget.Label
	inputs       map[models.Field]*widget.Entry
	submitButton *widget.Button
	cancelButton *widget.Button

	submitHandler func(models.Entry)
	cancelHandler func()
}

// NewEntryForm creates an empty form in "new entry" mode
func NewEntryForm() *EntryForm {
	f := &EntryForm{inputs: make(map[models.Field]*widget.Entry, len(models.Fields()))}
	f.createComponents()
	f.buildLayout()
	return f
}

func (f *EntryForm) createComponents() {
	f.form = widget.NewForm()
	for _, field := range models.Fields() {
		var input *widget.Entry
		if multiLine[field] {
			input = widget.NewMultiLineEntry()
			input.Wrapping = fyne.TextWrapWord
			input.SetMinRowsVisible(2)
		} else {
			input = widget.NewEntry()
		}
		input.SetPlaceHolder(field.Label())
		f.inputs[field] = input
		f.form.Append(field.Label(), input)
	}

	f.modeLabel = widget.NewLabel("")
	f.SetEditing(models.UnsetID)

	f.submitButton = widget.NewButtonWithIcon("Submit", theme.ConfirmIcon(), func() {
		if f.submitHandler != nil {
			f.submitHandler(f.Values())
		}
	})
	f.submitButton.Importance = widget.HighImportance

	f.cancelButton = widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), func() {
		if f.cancelHandler != nil {
			f.cancelHandler()
		}
	})
}

func (f *EntryForm) buildLayout() {
	buttons := container.NewHBox(f.modeLabel, layout.NewSpacer(), f.cancelButton, f.submitButton)
	f.container = container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(f.form))
}

// SetSubmitHandler sets the handler receiving the form values on Submit
func (f *EntryForm) SetSubmitHandler(handler func(models.Entry)) {
	f.submitHandler = handler
}

// SetCancelHandler sets the handler for the Cancel button
func (f *EntryForm) SetCancelHandler(handler func()) {
	f.cancelHandler = handler
}

// Fill copies every field of entry into the inputs.
func (f *EntryForm) Fill(entry models.Entry) {
	for field, input := range f.inputs {
		input.SetText(entry.Get(field))
	}
}

// Values builds an Entry from the inputs. The id is always unset.
func (f *EntryForm) Values() models.Entry {
	var entry models.Entry
	for field, input := range f.inputs {
		entry.Set(field, input.Text)
	}
	return entry
}

// Clear empties every input.
func (f *EntryForm) Clear() {
	for _, input := range f.inputs {
		input.SetText("")
	}
}

// SetEditing switches the mode caption between new and edit.
func (f *EntryForm) SetEditing(id int64) {
	if id == models.UnsetID {
		f.modeLabel.SetText("New entry")
		return
	}
	f.modeLabel.SetText(fmt.Sprintf("Editing entry #%d", id))
}

// Mode returns the current mode caption.
func (f *EntryForm) Mode() string {
	return f.modeLabel.Text
}

// Input returns the input widget bound to field.
func (f *EntryForm) Input(field models.Field) *widget.Entry {
	return f.inputs[field]
}

// GetContainer returns the form container
func (f *EntryForm) GetContainer() *fyne.Container {
	return f.container
}
