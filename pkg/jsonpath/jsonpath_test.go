package jsonpath

import (
	"testing"
)

const doc = `{
	"source": "runner.ini",
	"databases": [
		{"id": "mysql(a)", "name": "mysql", "label": "a", "mpls": [1, 2, 4], "output_plots": true},
		{"id": "postgres", "name": "postgres", "label": "", "mpls": [1], "output_plots": false}
	],
	"warnings": null
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		expected      string
		expectedError bool
	}{
		{
			name:     "Root path",
			path:     "$",
			expected: doc,
		},
		{
			name:     "Simple property",
			path:     "$.source",
			expected: "runner.ini",
		},
		{
			name:     "Array element field",
			path:     "$.databases[0].label",
			expected: "a",
		},
		{
			name:     "Nested array index",
			path:     "$.databases[0].mpls[2]",
			expected: "4",
		},
		{
			name:     "Boolean",
			path:     "$.databases[1].output_plots",
			expected: "false",
		},
		{
			name:     "Quoted field",
			path:     "$['databases'][1]['id']",
			expected: "postgres",
		},
		{
			name:     "Wildcard",
			path:     "$.databases[*].id",
			expected: `["mysql(a)","postgres"]`,
		},
		{
			name:     "Null value",
			path:     "$.warnings",
			expected: "null",
		},
		{
			name:          "Missing path",
			path:          "$.databases[5].id",
			expectedError: true,
		},
		{
			name:          "Empty path",
			path:          "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Extract(doc, tt.path)
			if tt.expectedError {
				if err == nil {
					t.Errorf("Expected error for path %s, got nil", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for path %s: %v", tt.path, err)
			}
			if result != tt.expected {
				t.Errorf("Extract(%s) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestExtract_InvalidDocument(t *testing.T) {
	if _, err := Extract("", "$.a"); err == nil {
		t.Error("Expected error for empty document")
	}
	if _, err := Extract("{not json", "$.a"); err == nil {
		t.Error("Expected error for invalid document")
	}
}

func TestToGjsonPath(t *testing.T) {
	tests := map[string]string{
		"$":                    "@this",
		"$.databases":          "databases",
		"$.databases[0].label": "databases.0.label",
		"$['source']":          "source",
		"$[1]":                 "1",
		"$.databases[*].mpls":  "databases.#.mpls",
		"databases.0":          "databases.0",
	}

	for in, want := range tests {
		if got := ToGjsonPath(in); got != want {
			t.Errorf("ToGjsonPath(%q) = %q, want %q", in, got, want)
		}
	}
}
