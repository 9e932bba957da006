package dialog

import (
	"fmt"
	"strings"

	"classrecord-be/pkg/store"
)

const (
	respFallback = "Sorry, I didn't catch that. Say 'show commands' to see everything I can do."

	respNotePrompt    = "Sure, tell me what's on your mind. Say 'done' to save it or 'cancel' to throw it away."
	respNoteContinue  = "Got it. Keep going, or say 'done' to save, 'cancel' to discard."
	respNothingNoted  = "Nothing noted, the draft was empty."
	respNoteCancelled = "Alright, I've thrown that draft away."

	respNoNotes            = "You don't have any notes yet. Say 'take a note' and I'll remember one for you."
	respNoNotesToDelete    = "You have no notes to delete."
	respNoCalendarNotes    = "Your calendar is empty."
	respNoCalendarToDelete = "There are no calendar notes to delete."
	respNoClasses          = "You haven't set up any classes yet."

	respPickNumber            = "Enter the number from the list, or 'cancel' to stop."
	respInvalidNoteNumber     = "That's not a valid note number. Pick one from the list, or say 'cancel'."
	respInvalidCalendarNumber = "That's not a valid calendar note number. Pick one from the list, or say 'cancel'."
	respYesOrNo               = "Please answer yes or no."
	respDeletionAborted       = "Okay, I left everything alone."
	respDeletionDone          = "Done deleting."

	respNotFoundOrNotPermitted = "That one was not found or not permitted, it may already be gone."

	respDeleteAllAborted = "Okay, I kept your notes."

	respActionFailed = "Sorry, something went wrong on my end. Nothing was changed that shouldn't be, please try again in a moment."

	respPaletteClosed   = "Closed the command menu."
	respPaletteReprompt = "Enter a number between 1 and 15, or 'done' to leave the menu."
)

func respNoteSaved(content string) string {
	return fmt.Sprintf("Noted! I saved: %q", content)
}

func respConfirmDeleteAll(count int) string {
	return fmt.Sprintf("This permanently deletes all %d of your notes. Reply exactly 'yes' to confirm, anything else cancels.", count)
}

func respAllNotesDeleted(count int64) string {
	return fmt.Sprintf("Deleted all %d notes.", count)
}

func renderNotes(notes []store.PendingNote) string {
	var b strings.Builder
	for i, n := range notes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, n.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCalendar(entries []store.PendingCalendarNote) string {
	var b strings.Builder
	for i, c := range entries {
		fmt.Fprintf(&b, "%d. %s - %s", i+1, c.Date.Format("Mon, 02 Jan 2006"), c.Title)
		if c.Type != "" {
			fmt.Fprintf(&b, " [%s]", c.Type)
		}
		if c.ClassName != "" {
			fmt.Fprintf(&b, " (class %s)", c.ClassName)
		}
		if c.Description != "" {
			fmt.Fprintf(&b, ": %s", c.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNumbered(items []string) string {
	var b strings.Builder
	for i, s := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}
