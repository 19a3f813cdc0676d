package naming

import (
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"name", "Name"},
		{"org_id", "Org ID"},
		{"next_activity_date", "Next Activity Date"},
		{"person.email", "Person Email"},
		{"expectedCloseDate", "Expected Close Date"},
		{"cc_email", "CC Email"},
		{"website_url", "Website URL"},
		{"admin_area_level_1", "Admin Area Level 1"},
		{"WORK", "Work"},
		{"XMLParser", "Xml Parser"},
		{"", ""},
		{"__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Title(tt.input)
			if result != tt.expected {
				t.Errorf("Title(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"custom_fields.abc", []string{"custom", "fields", "abc"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenize(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	if got := NormalizeLabel("  Work "); got != "work" {
		t.Errorf("NormalizeLabel = %q", got)
	}
}
