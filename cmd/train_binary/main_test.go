package main

import "testing"

func TestDataset(t *testing.T) {
	for _, tc := range []struct {
		name    string
		bits    int
		samples int
	}{
		{"binary", 0, 4},
		{"isalnum", 0, 256},
		{"squareroot", 8, 256},
		{"squareroot", 10, 1024},
	} {
		set, err := dataset(tc.name, tc.bits)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(set) != tc.samples {
			t.Errorf("%s %d bits: %d samples, want %d", tc.name, tc.bits, len(set), tc.samples)
		}
	}
	for _, bad := range []struct {
		name string
		bits int
	}{{"squareroot", 0}, {"squareroot", 17}, {"xor", 8}} {
		if _, err := dataset(bad.name, bad.bits); err == nil {
			t.Errorf("%s %d bits: expected an error", bad.name, bad.bits)
		}
	}
}

func TestSource(t *testing.T) {
	a, b := source(3), source(3)
	for i := 0; i < 5; i++ {
		if x, y := a.NextSignedUnit(), b.NextSignedUnit(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
	if x := source(0).NextSignedUnit(); x < -1 || x > 1 {
		t.Errorf("clock seeded source: %v", x)
	}
}
