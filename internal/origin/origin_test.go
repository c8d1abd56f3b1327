package origin

import "testing"

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		patterns []string
		want     bool
	}{
		{"empty list allows everything", "https://evil.example", nil, true},
		{"bare host match", "https://example.com", []string{"example.com"}, true},
		{"bare host with port", "https://example.com:3000", []string{"example.com"}, true},
		{"bare host mismatch", "https://other.com", []string{"example.com"}, false},
		{"bare host is case-insensitive", "https://EXAMPLE.com", []string{"Example.COM"}, true},
		{"full origin exact match", "https://example.com", []string{"https://example.com"}, true},
		{"full origin scheme mismatch", "http://example.com", []string{"https://example.com"}, false},
		{"full origin port mismatch", "https://example.com:8080", []string{"https://example.com"}, false},
		{"wildcard matches subdomain", "https://app.example.com", []string{"*.example.com"}, true},
		{"wildcard matches nested subdomain", "https://a.b.example.com", []string{"*.example.com"}, true},
		{"wildcard does not match apex", "https://example.com", []string{"*.example.com"}, false},
		{"wildcard does not match suffix trick", "https://evilexample.com", []string{"*.example.com"}, false},
		{"apex listed separately", "https://example.com", []string{"*.example.com", "example.com"}, true},
		{"first match wins among several", "https://a.example.com", []string{"other.com", "*.example.com"}, true},
		{"malformed origin", "not a url", []string{"example.com"}, false},
		{"empty origin with list", "", []string{"example.com"}, false},
		{"blank patterns skipped", "https://example.com", []string{" ", "example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.origin, tt.patterns); got != tt.want {
				t.Errorf("Allowed(%q, %v) = %v, want %v", tt.origin, tt.patterns, got, tt.want)
			}
		})
	}
}
