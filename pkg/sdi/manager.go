package sdi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/calvinalkan/formdoc/pkg/bind"
)

const filePerms = 0o600

// untitledName is shown in prompts while the document has no file yet.
const untitledName = "Untitled"

// Config wires a Manager. NewDocument and Dialogs are required; Codec
// defaults to JSONCodec.
type Config[D any] struct {
	// NewDocument produces a fresh default document for New and startup.
	NewDocument func() *D

	// Dialogs provides file pickers and the unsaved-changes prompt.
	Dialogs Dialogs

	// Filter restricts the file dialogs; Filter.Extension is appended to
	// picked save names that lack it.
	Filter FileFilter

	// Codec serializes documents. Defaults to JSONCodec[D]().
	Codec Codec[D]
}

// Manager drives the new/open/save/close lifecycle for one document bound
// through a bind.Binder. Like the binder, it is single-threaded: all methods
// run on the host toolkit's event-dispatch goroutine.
type Manager[D any] struct {
	cfg    Config[D]
	binder *bind.Binder[D]

	filename        string
	filenameChanged func(filename string)
}

// NewManager validates cfg and creates a manager holding a fresh default
// document. Bind controls through Binder() before the first LoadValues.
func NewManager[D any](cfg Config[D]) (*Manager[D], error) {
	if cfg.NewDocument == nil {
		return nil, errNewDocumentRequired
	}

	if cfg.Dialogs == nil {
		return nil, errDialogsRequired
	}

	if cfg.Codec == nil {
		cfg.Codec = JSONCodec[D]()
	}

	return &Manager[D]{
		cfg:    cfg,
		binder: bind.New(cfg.NewDocument()),
	}, nil
}

// Binder returns the control binder owning the current document.
func (m *Manager[D]) Binder() *bind.Binder[D] {
	return m.binder
}

// Document returns the current document.
func (m *Manager[D]) Document() *D {
	return m.binder.Document()
}

// FileName returns the current document's file path, or "" before the first
// save/open.
func (m *Manager[D]) FileName() string {
	return m.filename
}

// IsDirty reports unsaved changes.
func (m *Manager[D]) IsDirty() bool {
	return m.binder.IsDirty()
}

// OnFileNameChanged installs a callback fired whenever the document's file
// path changes (new, open, save-as). Hosts use it for title bars.
func (m *Manager[D]) OnFileNameChanged(fn func(filename string)) {
	m.filenameChanged = fn
}

// New replaces the document with a fresh default instance and clears all
// controls. With unsaved changes it prompts first; ErrCancelled means
// nothing happened.
func (m *Manager[D]) New() error {
	err := m.confirmUnsaved()
	if err != nil {
		return err
	}

	m.binder.SetDocument(m.cfg.NewDocument())
	m.binder.ClearValues()
	m.setFileName("")

	return nil
}

// Open prompts for a document file and loads it. With unsaved changes it
// prompts to save first; ErrCancelled means nothing happened. On read or
// parse failure the prior document and filename are preserved unchanged.
func (m *Manager[D]) Open() error {
	err := m.confirmUnsaved()
	if err != nil {
		return err
	}

	path, ok, pickErr := m.cfg.Dialogs.PickOpenFile(m.cfg.Filter)
	if pickErr != nil {
		return fmt.Errorf("open dialog: %w", pickErr)
	}

	if !ok {
		return ErrCancelled
	}

	return m.readInto(path)
}

// OpenFile loads the document at path without showing a picker. Unsaved
// changes still prompt first. Failure semantics match Open.
func (m *Manager[D]) OpenFile(path string) error {
	err := m.confirmUnsaved()
	if err != nil {
		return err
	}

	return m.readInto(path)
}

// Save serializes the document to its file, prompting for a name first if it
// has none. A successful save clears the dirty flag.
func (m *Manager[D]) Save() error {
	if m.filename == "" {
		return m.SaveAs()
	}

	return m.writeTo(m.filename)
}

// SaveAs always prompts for a file name. The configured extension is
// appended when the picked name lacks it; the comparison ignores case, so
// an upper-cased name keeps its spelling.
func (m *Manager[D]) SaveAs() error {
	path, ok, err := m.cfg.Dialogs.PickSaveFile(m.cfg.Filter)
	if err != nil {
		return fmt.Errorf("save dialog: %w", err)
	}

	if !ok {
		return ErrCancelled
	}

	ext := m.cfg.Filter.Extension
	if ext != "" && !hasSuffixFold(path, ext) {
		path += ext
	}

	return m.writeTo(path)
}

// CloseRequested is the host-window close hook. It returns true when the
// host may proceed with closing. With unsaved changes the user chooses
// save-and-close, discard-and-close, or cancel; cancel (or a failed or
// cancelled save) vetoes the close.
func (m *Manager[D]) CloseRequested() (bool, error) {
	if !m.binder.IsDirty() {
		return true, nil
	}

	choice, err := m.cfg.Dialogs.ConfirmUnsaved(m.displayName())
	if err != nil {
		return false, err
	}

	switch choice {
	case ChoiceSave:
		saveErr := m.Save()
		if errors.Is(saveErr, ErrCancelled) {
			// A cancelled save-as picker vetoes the close; it is not an error.
			return false, nil
		}

		if saveErr != nil {
			return false, saveErr
		}

		return true, nil
	case ChoiceDiscard:
		return true, nil
	default:
		return false, nil
	}
}

// confirmUnsaved gates destructive operations. It returns nil when the
// operation may proceed: no unsaved changes, the user discarded them, or a
// save succeeded. ErrCancelled (from the prompt or from a cancelled save-as)
// aborts the caller.
func (m *Manager[D]) confirmUnsaved() error {
	if !m.binder.IsDirty() {
		return nil
	}

	choice, err := m.cfg.Dialogs.ConfirmUnsaved(m.displayName())
	if err != nil {
		return err
	}

	switch choice {
	case ChoiceSave:
		return m.Save()
	case ChoiceDiscard:
		return nil
	default:
		return ErrCancelled
	}
}

func (m *Manager[D]) readInto(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadDocument, path, err)
	}

	doc, decodeErr := m.cfg.Codec.Decode(data)
	if decodeErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeDocument, path, decodeErr)
	}

	m.binder.SetDocument(doc)

	loadErr := m.binder.LoadValues()

	m.setFileName(path)

	return loadErr
}

func (m *Manager[D]) writeTo(path string) error {
	data, err := m.cfg.Codec.Encode(m.binder.Document())
	if err != nil {
		return err
	}

	writeErr := atomic.WriteFile(path, bytes.NewReader(data))
	if writeErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteDocument, path, writeErr)
	}

	// atomic.WriteFile doesn't set permissions for new files.
	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteDocument, path, chmodErr)
	}

	m.setFileName(path)
	m.binder.MarkClean()

	return nil
}

func (m *Manager[D]) setFileName(path string) {
	if m.filename == path {
		return
	}

	m.filename = path

	if m.filenameChanged != nil {
		m.filenameChanged(path)
	}
}

func (m *Manager[D]) displayName() string {
	if m.filename == "" {
		return untitledName
	}

	return filepath.Base(m.filename)
}

// hasSuffixFold is a case-insensitive strings.HasSuffix.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
