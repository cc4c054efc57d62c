package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestParseRunID tests run ID parsing
func TestParseRunID(t *testing.T) {
	tests := []struct {
		input    string
		expected RunID
		hasError bool
	}{
		{"run-123", RunID("run-123"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseRunID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestFingerprintDeterminism tests that equal values fingerprint equally
func TestFingerprintDeterminism(t *testing.T) {
	type probe struct {
		A int
		B string
	}

	h1 := MustFingerprint(probe{A: 1, B: "x"})
	h2 := MustFingerprint(probe{A: 1, B: "x"})
	h3 := MustFingerprint(probe{A: 2, B: "x"})

	if h1 != h2 {
		t.Errorf("Equal values produced different fingerprints: %s vs %s", h1, h2)
	}
	if h1 == h3 {
		t.Error("Different values produced the same fingerprint")
	}
	if len(h1.Short()) != 12 {
		t.Errorf("Short() should return 12 characters, got %d", len(h1.Short()))
	}
}
