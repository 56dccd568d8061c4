package models

import "fmt"

// UnsetID marks an Entry that has not been persisted yet.
// SQLite assigns ids starting at 1.
const UnsetID int64 = 0

// Entry is one journal record for a day of Bible reading.
type Entry struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Date      string `db:"date"`
	Book      string `db:"book"`
	Event     string `db:"event"`
	Verse     string `db:"verse"`
	TimeSpent string `db:"time"`
	Action    string `db:"action"`
}

// IsPersisted reports whether storage has assigned an id.
func (e Entry) IsPersisted() bool {
	return e.ID > UnsetID
}

// Get returns the value of a single attribute.
func (e Entry) Get(f Field) string {
	spec, ok := fieldTable[f]
	if !ok {
		return ""
	}
	return *spec.ref(&e)
}

// Set overwrites a single attribute. Unknown fields are ignored.
func (e *Entry) Set(f Field, value string) {
	spec, ok := fieldTable[f]
	if !ok {
		return
	}
	*spec.ref(e) = value
}

// Values returns all attribute values in column order.
func (e Entry) Values() []string {
	fields := Fields()
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = e.Get(f)
	}
	return values
}

func (e Entry) String() string {
	out := fmt.Sprintf("Name: %-8s Date: %-15s Book: %-8s Character or Event: %-15s", e.Name, e.Date, e.Book, e.Event)
	out += fmt.Sprintf("Verse: %-50s Time spent: %s min\t Action: %-30s", e.Verse, e.TimeSpent, e.Action)
	return out
}
