// Package sdi manages the single-document lifecycle around a bind.Binder:
// new, open, save, save-as, and a close-request hook, with dirty-state
// tracking and unsaved-changes prompting.
//
// Exactly one document is open at a time. The document is replaced wholesale
// on new/open, never partially reconstructed. Any prompt the user cancels
// leaves document, filename, and dirty state untouched and aborts the
// operation with ErrCancelled.
//
// File dialogs and confirmation prompts are host-provided through the
// Dialogs interface; serialization goes through a Codec (JSONCodec by
// default). Saves are atomic rename-into-place writes.
package sdi
