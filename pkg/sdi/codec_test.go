package sdi

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONCodecEncodeIsIndented(t *testing.T) {
	t.Parallel()

	codec := JSONCodec[note]()

	data, err := codec.Encode(&note{Title: "t", Stars: 1})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := string(data)

	if !strings.HasSuffix(out, "\n") {
		t.Error("encoded document missing trailing newline")
	}

	if !strings.Contains(out, "\n  \"title\": \"t\"") {
		t.Errorf("encoded document not indented:\n%s", out)
	}
}

func TestJSONCodecDecodeToleratesJSONC(t *testing.T) {
	t.Parallel()

	codec := JSONCodec[note]()

	// Hand-edited document files may carry comments and trailing commas.
	doc, err := codec.Decode([]byte(`{
		// edited by hand
		"title": "jsonc",
		"stars": 2,
	}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := &note{Title: "jsonc", Stars: 2}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONCodecDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	codec := JSONCodec[note]()

	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"title": `},
		{"not json", `=== not a document ===`},
		{"wrong shape", `{"title": {"nested": true}}`},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := codec.Decode([]byte(testCase.data))
			if err == nil {
				t.Errorf("Decode accepted %q", testCase.data)
			}
		})
	}
}
