// Package prompt implements sdi.Dialogs on a plain terminal using line
// prompts: file paths are entered with tab completion, the unsaved-changes
// prompt is a three-way y/n/c question.
//
// Full-screen TUI hosts set Terminal.Suspend (e.g. to tview's
// Application.Suspend) so prompts run with the screen restored.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/formdoc/pkg/sdi"
)

// Terminal prompts on stdin/stdout via liner.
type Terminal struct {
	// Suspend, if non-nil, runs fn with the terminal in cooked mode.
	Suspend func(fn func())
}

// PickOpenFile prompts for an existing document path. Empty input, ctrl-C,
// and EOF all mean cancel.
func (t *Terminal) PickOpenFile(filter sdi.FileFilter) (string, bool, error) {
	return t.pickFile("Open", filter)
}

// PickSaveFile prompts for a save path.
func (t *Terminal) PickSaveFile(filter sdi.FileFilter) (string, bool, error) {
	return t.pickFile("Save as", filter)
}

// ConfirmUnsaved asks the three-way unsaved-changes question. Unrecognized
// input re-prompts; ctrl-C and EOF mean cancel.
func (t *Terminal) ConfirmUnsaved(name string) (sdi.Choice, error) {
	choice := sdi.ChoiceCancel

	var promptErr error

	t.run(func() {
		line := liner.NewLiner()
		defer line.Close()

		line.SetCtrlCAborts(true)

		for {
			answer, err := line.Prompt(fmt.Sprintf("Save changes to %s? [y]es/[n]o/[c]ancel: ", name))
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				promptErr = err
				return
			}

			parsed, ok := parseChoice(answer)
			if ok {
				choice = parsed
				return
			}
		}
	})

	return choice, promptErr
}

func (t *Terminal) pickFile(verb string, filter sdi.FileFilter) (string, bool, error) {
	var (
		path      string
		ok        bool
		promptErr error
	)

	t.run(func() {
		line := liner.NewLiner()
		defer line.Close()

		line.SetCtrlCAborts(true)
		line.SetCompleter(pathCompleter(filter.Extension))

		label := verb
		if filter.Description != "" {
			label = fmt.Sprintf("%s (%s)", verb, filter.Description)
		}

		input, err := line.Prompt(label + ": ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return
		}

		if err != nil {
			promptErr = err
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			return
		}

		path = input
		ok = true
	})

	return path, ok, promptErr
}

func (t *Terminal) run(fn func()) {
	if t.Suspend != nil {
		t.Suspend(fn)
		return
	}

	fn()
}

// parseChoice maps prompt input to a Choice. The second return is false for
// input that matches nothing, which re-prompts.
func parseChoice(answer string) (sdi.Choice, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "save":
		return sdi.ChoiceSave, true
	case "n", "no", "d", "discard":
		return sdi.ChoiceDiscard, true
	case "c", "cancel":
		return sdi.ChoiceCancel, true
	default:
		return sdi.ChoiceCancel, false
	}
}

// pathCompleter completes the typed prefix against the filesystem.
// Directories complete with a trailing separator so completion can continue
// into them; files are narrowed to the document extension when one is set.
func pathCompleter(ext string) liner.Completer {
	return func(prefix string) []string {
		matches, err := filepath.Glob(prefix + "*")
		if err != nil {
			return nil
		}

		var out []string

		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil {
				continue
			}

			if info.IsDir() {
				out = append(out, match+string(os.PathSeparator))
				continue
			}

			if ext == "" || strings.HasSuffix(match, ext) {
				out = append(out, match)
			}
		}

		return out
	}
}
