package main

import "testing"

func TestParseBufferSize(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"", defaultBufferSize, true},
		{"4096", 4096, true},
		{"32k", 32 * 1024, true},
		{"2m", 2 * 1024 * 1024, true},
		{"2M", 2 * 1024 * 1024, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"not-a-number", 0, false},
	}
	for _, c := range cases {
		got, ok := parseBufferSize(c.in)
		if ok != c.wantOK {
			t.Errorf("parseBufferSize(%q) ok = %v, want %v", c.in, ok, c.wantOK)
			continue
		}
		if ok && got != c.want {
			t.Errorf("parseBufferSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestResolveBufferSizeFallsBackOnInvalid(t *testing.T) {
	if got := resolveBufferSize("garbage"); got != defaultBufferSize {
		t.Errorf("resolveBufferSize(garbage) = %d, want default %d", got, defaultBufferSize)
	}
	if got := resolveBufferSize("16384"); got != 16384 {
		t.Errorf("resolveBufferSize(16384) = %d, want 16384", got)
	}
}
