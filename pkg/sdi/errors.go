package sdi

import "errors"

var (
	// ErrCancelled signals that the user dismissed a prompt. The operation was
	// aborted and no state changed. Hosts usually treat it as a no-op.
	ErrCancelled = errors.New("cancelled by user")

	// ErrDecodeDocument wraps deserialization failures on open. The prior
	// in-memory document is preserved unchanged.
	ErrDecodeDocument = errors.New("cannot decode document")

	// ErrReadDocument wraps read failures on open.
	ErrReadDocument = errors.New("cannot read document file")

	// ErrWriteDocument wraps write failures on save.
	ErrWriteDocument = errors.New("cannot write document file")

	errNewDocumentRequired = errors.New("sdi: Config.NewDocument is required")
	errDialogsRequired     = errors.New("sdi: Config.Dialogs is required")
)
