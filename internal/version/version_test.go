package version

import "testing"

func TestGetVersion_Linked(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "1.2.3"
	if got := GetVersion(); got != "1.2.3" {
		t.Errorf("GetVersion() = %q, want %q", got, "1.2.3")
	}
}

func TestGetVersion_Fallback(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = ""
	if got := GetVersion(); got == "" {
		t.Error("GetVersion() returned empty string")
	}
}
