package models

// Field identifies one user-editable attribute of an Entry.
type Field int

const (
	FieldName Field = iota
	FieldDate
	FieldBook
	FieldEvent
	FieldVerse
	FieldTimeSpent
	FieldAction
)

type fieldSpec struct {
	label  string
	column string
	ref    func(*Entry) *string
}

var fieldTable = map[Field]fieldSpec{
	FieldName:      {"Name", "name", func(e *Entry) *string { return &e.Name }},
	FieldDate:      {"Date", "date", func(e *Entry) *string { return &e.Date }},
	FieldBook:      {"Book of Bible", "book", func(e *Entry) *string { return &e.Book }},
	FieldEvent:     {"Character or Event", "event", func(e *Entry) *string { return &e.Event }},
	FieldVerse:     {"Standing-out Verse", "verse", func(e *Entry) *string { return &e.Verse }},
	FieldTimeSpent: {"Time Spent (min)", "time", func(e *Entry) *string { return &e.TimeSpent }},
	FieldAction:    {"Practical Action", "action", func(e *Entry) *string { return &e.Action }},
}

// Fields returns every attribute in display and column order.
func Fields() []Field {
	return []Field{FieldName, FieldDate, FieldBook, FieldEvent, FieldVerse, FieldTimeSpent, FieldAction}
}

// Label is the human-readable header for the attribute.
func (f Field) Label() string {
	return fieldTable[f].label
}

// Column is the storage column backing the attribute.
func (f Field) Column() string {
	return fieldTable[f].column
}

func (f Field) String() string {
	if spec, ok := fieldTable[f]; ok {
		return spec.column
	}
	return "unknown"
}
