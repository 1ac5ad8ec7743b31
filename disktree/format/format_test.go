package format

import "testing"

func TestLayoutOffsets(t *testing.T) {
	if HeaderSize != 9 {
		t.Fatalf("HeaderSize = %d, want 9", HeaderSize)
	}
	if BaseTableSize != 610 {
		t.Fatalf("BaseTableSize = %d, want 610", BaseTableSize)
	}
	if NodeAreaStart != 619 {
		t.Fatalf("NodeAreaStart = %d, want 619", NodeAreaStart)
	}
}

func TestVersionRoundTrip(t *testing.T) {
	encoded := EncodeVersion(SupportedVersion)
	if got := DecodeVersion(encoded); got != SupportedVersion {
		t.Fatalf("DecodeVersion(EncodeVersion(%d)) = %d", SupportedVersion, got)
	}
	// An all-zero (e.g. truncated) byte never decodes as the supported version.
	if DecodeVersion(0) == SupportedVersion {
		t.Fatalf("a zero byte must not decode as a supported version")
	}
}
