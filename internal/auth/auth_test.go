package auth

import "testing"

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"valid", "Bearer abc123", "abc123", true},
		{"lowercase scheme", "bearer abc123", "abc123", true},
		{"empty header", "", "", false},
		{"no scheme", "abc123", "", false},
		{"wrong scheme", "Basic abc123", "", false},
		{"empty token", "Bearer ", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			token, ok := BearerToken(c.header)
			if ok != c.ok {
				t.Fatalf("BearerToken(%q) ok = %v, want %v", c.header, ok, c.ok)
			}
			if token != c.token {
				t.Errorf("BearerToken(%q) = %q, want %q", c.header, token, c.token)
			}
		})
	}
}
