package prompt

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/calvinalkan/formdoc/pkg/sdi"
)

func TestParseChoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  sdi.Choice
		ok    bool
	}{
		{"y", sdi.ChoiceSave, true},
		{"YES", sdi.ChoiceSave, true},
		{"save", sdi.ChoiceSave, true},
		{" s ", sdi.ChoiceSave, true},
		{"n", sdi.ChoiceDiscard, true},
		{"no", sdi.ChoiceDiscard, true},
		{"discard", sdi.ChoiceDiscard, true},
		{"c", sdi.ChoiceCancel, true},
		{"Cancel", sdi.ChoiceCancel, true},
		{"", sdi.ChoiceCancel, false},
		{"maybe", sdi.ChoiceCancel, false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run("input="+testCase.input, func(t *testing.T) {
			t.Parallel()

			got, ok := parseChoice(testCase.input)
			if got != testCase.want || ok != testCase.ok {
				t.Errorf("parseChoice(%q) = (%v, %v), want (%v, %v)",
					testCase.input, got, ok, testCase.want, testCase.ok)
			}
		})
	}
}

func TestPathCompleter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"alpha.note.json", "alright.txt"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600)
		if err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}

	err := os.Mkdir(filepath.Join(dir, "archive"), 0o750)
	if err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	complete := pathCompleter(".note.json")

	got := complete(filepath.Join(dir, "al"))

	if !slices.Contains(got, filepath.Join(dir, "alpha.note.json")) {
		t.Errorf("completions %v missing matching document", got)
	}

	if slices.Contains(got, filepath.Join(dir, "alright.txt")) {
		t.Errorf("completions %v include file with wrong extension", got)
	}

	got = complete(filepath.Join(dir, "ar"))

	wantDir := filepath.Join(dir, "archive") + string(os.PathSeparator)
	if !slices.Contains(got, wantDir) {
		t.Errorf("completions %v missing directory %q", got, wantDir)
	}

	// No extension filter: everything matches.
	got = pathCompleter("")(filepath.Join(dir, "al"))
	if !slices.Contains(got, filepath.Join(dir, "alright.txt")) {
		t.Errorf("unfiltered completions %v missing plain file", got)
	}
}
