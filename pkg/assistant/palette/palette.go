// Package palette defines the fixed numbered command menu. The mapping
// of digits to canonical phrases is a versioned contract: clients rely
// on the shortcuts, so renumbering is a breaking change.
package palette

import (
	"fmt"
	"strings"
)

// Size is the number of menu entries.
const Size = 15

// ExitToken leaves the palette. Matched literally, never fuzzily.
const ExitToken = "done"

// Item is one numbered menu entry. Phrase is the canonical trigger the
// selection is resolved as, Label is what the menu shows.
type Item struct {
	Number int
	Label  string
	Phrase string
}

var items = []Item{
	{1, "Show my notes", "show my notes"},
	{2, "Take a note", "take a note"},
	{3, "Delete a note", "delete a note"},
	{4, "Delete all notes", "delete all notes"},
	{5, "Show calendar notes", "show calendar notes"},
	{6, "Delete a calendar note", "delete a calendar note"},
	{7, "Delete a class", "delete a class"},
	{8, "Add a class", "add a class"},
	{9, "Add a student", "add a student"},
	{10, "Record a grade", "record a grade"},
	{11, "Show my classes", "show my classes"},
	{12, "Grade summary", "grade summary"},
	{13, "Add a calendar note", "add a calendar note"},
	{14, "Back up my data", "back up my data"},
	{15, "Restore a backup", "restore a backup"},
}

// Items returns the menu in display order.
func Items() []Item {
	return items
}

// Phrase maps a selection to its canonical trigger phrase.
func Phrase(number int) (string, bool) {
	if number < 1 || number > len(items) {
		return "", false
	}
	return items[number-1].Phrase, true
}

// Render produces the numbered menu text.
func Render() string {
	var b strings.Builder
	b.WriteString("Here's everything I can do. Enter a number, or 'done' to leave the menu:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", it.Number, it.Label)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Footer is the reminder appended to replies while the menu is active.
func Footer() string {
	return fmt.Sprintf("(Command menu is still open, enter 1-%d for another command, or '%s' to leave.)", Size, ExitToken)
}
