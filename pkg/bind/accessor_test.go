package bind

import (
	"errors"
	"testing"
)

type record struct {
	Title  string
	Count  int
	Ratio  float64
	hidden string
}

func TestFieldByNameReadsAndWrites(t *testing.T) {
	t.Parallel()

	acc, err := FieldByName[record, string]("Title")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}

	doc := &record{Title: "draft"}

	if got := acc.Get(doc); got != "draft" {
		t.Errorf("Get = %q, want %q", got, "draft")
	}

	acc.Set(doc, "final")

	if doc.Title != "final" {
		t.Errorf("Title = %q after Set, want %q", doc.Title, "final")
	}
}

func TestFieldByNameErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resolve func() error
		want    error
	}{
		{
			name: "unknown field",
			resolve: func() error {
				_, err := FieldByName[record, string]("Missing")
				return err
			},
			want: ErrUnknownField,
		},
		{
			name: "unexported field",
			resolve: func() error {
				_, err := FieldByName[record, string]("hidden")
				return err
			},
			want: ErrUnexportedField,
		},
		{
			name: "incompatible type",
			resolve: func() error {
				_, err := FieldByName[record, []byte]("Count")
				return err
			},
			want: ErrFieldType,
		},
		{
			name: "non-struct document",
			resolve: func() error {
				_, err := FieldByName[int, int]("Anything")
				return err
			},
			want: ErrNotStruct,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.resolve()
			if !errors.Is(err, testCase.want) {
				t.Errorf("got %v, want %v", err, testCase.want)
			}
		})
	}
}

func TestFieldByNameWideningConversion(t *testing.T) {
	t.Parallel()

	acc, err := FieldByName[record, int64]("Count")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}

	doc := &record{Count: 7}

	if got := acc.Get(doc); got != 7 {
		t.Errorf("Get = %d, want 7", got)
	}

	acc.Set(doc, 42)

	if doc.Count != 42 {
		t.Errorf("Count = %d after Set, want 42", doc.Count)
	}
}

func TestFieldByNameBoxing(t *testing.T) {
	t.Parallel()

	acc, err := FieldByName[record, any]("Ratio")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}

	doc := &record{Ratio: 0.5}

	got, ok := acc.Get(doc).(float64)
	if !ok || got != 0.5 {
		t.Errorf("Get = %v, want 0.5", acc.Get(doc))
	}

	acc.Set(doc, 0.25)

	if doc.Ratio != 0.25 {
		t.Errorf("Ratio = %v after Set, want 0.25", doc.Ratio)
	}
}
