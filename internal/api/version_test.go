package api

import (
	"errors"
	"testing"
)

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		server  string
		wantErr bool
	}{
		{"", false},
		{"1.4.2", false},
		{"v1.0.0", false},
		{"v1", false},
		{"2.0.0", true},
		{"v0.9.1", true},
		{"not-a-version", false},
	}
	for _, tt := range tests {
		err := checkVersion("v1.0.0", tt.server)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkVersion(%q) = %v, wantErr %v", tt.server, err, tt.wantErr)
		}
		var verErr *VersionError
		if tt.wantErr && !errors.As(err, &verErr) {
			t.Errorf("checkVersion(%q) = %T, want *VersionError", tt.server, err)
		}
	}
}

func TestCanonicalVersion(t *testing.T) {
	got, err := canonicalVersion("1.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "v1.2.0" {
		t.Errorf("canonical = %q, want v1.2.0", got)
	}
	if _, err := canonicalVersion(""); err == nil {
		t.Error("expected error for empty version")
	}
}
