package sdi

// Choice is the answer to the unsaved-changes prompt.
type Choice int

const (
	// ChoiceCancel aborts the operation that raised the prompt.
	ChoiceCancel Choice = iota

	// ChoiceSave saves the document, then proceeds.
	ChoiceSave

	// ChoiceDiscard proceeds without saving.
	ChoiceDiscard
)

// FileFilter restricts the file dialogs to the document's file type. Both
// fields are caller-supplied configuration.
type FileFilter struct {
	// Description is the human-readable filter label, e.g. "Contact files".
	Description string

	// Extension is the document file extension including the dot, e.g.
	// ".contact.json". Appended to picked save names that lack it.
	Extension string
}

// Dialogs is the host-provided prompting surface. Implementations decide how
// prompts look (modal dialog, terminal prompt); the manager only consumes
// the answers.
//
// The pickers return ok=false when the user cancels; that is not an error.
type Dialogs interface {
	// PickOpenFile asks the user for an existing document file.
	PickOpenFile(filter FileFilter) (path string, ok bool, err error)

	// PickSaveFile asks the user where to save the document.
	PickSaveFile(filter FileFilter) (path string, ok bool, err error)

	// ConfirmUnsaved shows the three-way unsaved-changes prompt for the named
	// document. A dismissed prompt must report ChoiceCancel.
	ConfirmUnsaved(name string) (Choice, error)
}
