// Package knowledge is the assistant's static answer table: an ordered
// list of trigger phrases with either a literal reply or a sentinel for
// content that has to be fetched at answer time.
package knowledge

// Dynamic tags a response that cannot be answered from the table alone.
// The action handler layer resolves the tag before the reply goes out.
type Dynamic int

const (
	DynamicNone Dynamic = iota
	DynamicNotesList
	DynamicDeleteNotesList
	DynamicDeleteAllNotes
	DynamicCalendarList
	DynamicDeleteCalendarList
	DynamicClassList
	DynamicGradeSummary
)

// Entry is an immutable (trigger phrase, response) pair. Declaration
// order is the tie-break order for matching and must stay stable.
type Entry struct {
	Phrase   string
	Response string
	Dynamic  Dynamic
}

// Entries returns the knowledge base in declaration order. Callers must
// not mutate the returned slice.
func Entries() []Entry {
	return base
}

var base = []Entry{
	// Small talk.
	{Phrase: "hello", Response: "Hello! I'm Isla, your class-record assistant. Ask me to take a note, show your notes or calendar, or say 'show commands' for everything I can do."},
	{Phrase: "hi isla", Response: "Hi! How can I help with your classes today?"},
	{Phrase: "good morning", Response: "Good morning! Ready when you are."},
	{Phrase: "how are you", Response: "All systems green. What can I do for you?"},
	{Phrase: "what is your name", Response: "I'm Isla. I keep track of your notes, calendar and class records."},
	{Phrase: "thank you", Response: "You're welcome!"},
	{Phrase: "thanks", Response: "Anytime!"},
	{Phrase: "bye", Response: "Goodbye! Your records are safe with me."},

	// Notes.
	{Phrase: "show my notes", Dynamic: DynamicNotesList},
	{Phrase: "show notes", Dynamic: DynamicNotesList},
	{Phrase: "list my notes", Dynamic: DynamicNotesList},
	{Phrase: "read my notes", Dynamic: DynamicNotesList},
	{Phrase: "delete a note", Dynamic: DynamicDeleteNotesList},
	{Phrase: "delete note", Dynamic: DynamicDeleteNotesList},
	{Phrase: "remove a note", Dynamic: DynamicDeleteNotesList},
	{Phrase: "delete all notes", Dynamic: DynamicDeleteAllNotes},
	{Phrase: "clear all my notes", Dynamic: DynamicDeleteAllNotes},

	// Calendar notes.
	{Phrase: "show calendar notes", Dynamic: DynamicCalendarList},
	{Phrase: "show my calendar", Dynamic: DynamicCalendarList},
	{Phrase: "what is on my calendar", Dynamic: DynamicCalendarList},
	{Phrase: "delete a calendar note", Dynamic: DynamicDeleteCalendarList},
	{Phrase: "delete calendar note", Dynamic: DynamicDeleteCalendarList},
	{Phrase: "remove a calendar note", Dynamic: DynamicDeleteCalendarList},

	// Class records.
	{Phrase: "show my classes", Dynamic: DynamicClassList},
	{Phrase: "list my classes", Dynamic: DynamicClassList},
	{Phrase: "grade summary", Dynamic: DynamicGradeSummary},
	{Phrase: "how are my students doing", Dynamic: DynamicGradeSummary},

	// Guidance for operations that live in the web UI, not the chat.
	{Phrase: "add a class", Response: "Classes are created on the Classes page: open it and choose 'New class'."},
	{Phrase: "delete a class", Response: "To delete a class, open it on the Classes page and choose Delete. I can't remove classes from chat, deleting a class also removes its students and grades."},
	{Phrase: "add a student", Response: "Students are added on the class page: open the class and choose 'Add student'."},
	{Phrase: "record a grade", Response: "Grades are recorded on the student's page: open the class, pick the student and choose 'Record grade'."},
	{Phrase: "add a calendar note", Response: "Calendar notes are created on the Calendar page, pick a day and choose 'Add note'. I can list and delete them for you from chat."},
	{Phrase: "back up my data", Response: "Open the Backup page and choose Export, I'll copy the database into your sync folder and remember when it happened."},
	{Phrase: "restore a backup", Response: "Open the Backup page, pick a backup file and choose Import. The current database is replaced, so export first if unsure."},
}
