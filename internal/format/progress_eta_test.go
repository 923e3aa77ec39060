package format

import (
	"strings"
	"testing"
	"time"
)

// TestNewProgressWithETA verifies proper initialization.
func TestNewProgressWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(3)

	if p.ProgressState == nil {
		t.Fatal("ProgressState should not be nil")
	}
	if p.numWorkers != 3 {
		t.Errorf("numWorkers = %d, want 3", p.numWorkers)
	}
	if p.progressRate != 0 {
		t.Errorf("initial progressRate = %f, want 0", p.progressRate)
	}
	if p.startTime.IsZero() {
		t.Error("startTime should not be zero")
	}
}

// TestUpdateWithETA verifies progress updates and ETA calculation.
func TestUpdateWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(2)

	// Initial update
	progress, eta := p.UpdateWithETA(0, 0.25)
	if progress != 0.125 { // average of 0.25 and 0
		t.Errorf("initial progress = %f, want 0.125", progress)
	}
	// ETA should be 0 or calculating at first (not enough data)
	if eta < 0 {
		t.Errorf("ETA should not be negative, got %v", eta)
	}

	// Update second worker
	progress, _ = p.UpdateWithETA(1, 0.5)
	if progress != 0.375 { // average of 0.25 and 0.5
		t.Errorf("progress = %f, want 0.375", progress)
	}
}

// TestGetETA verifies ETA retrieval.
func TestGetETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(1)

	// Before any updates, ETA should be 0
	if eta := p.GetETA(); eta != 0 {
		t.Errorf("initial ETA = %v, want 0", eta)
	}

	// Simulate some progress
	p.Update(0, 0.5)
	p.progressRate = 0.1 // 10% per second

	eta := p.GetETA()
	// With 50% remaining at 10%/s, ETA should be around 5 seconds
	expectedETA := 5 * time.Second
	tolerance := time.Second
	if eta < expectedETA-tolerance || eta > expectedETA+tolerance {
		t.Errorf("ETA = %v, want approximately %v", eta, expectedETA)
	}
}

// TestFormatETA verifies ETA formatting.
func TestFormatETA(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		eta      time.Duration
		expected string
	}{
		{"Zero duration", 0, "calculating..."},
		{"Negative duration", -time.Second, "calculating..."},
		{"Less than a second", 500 * time.Millisecond, "< 1s"},
		{"One second", time.Second, "1s"},
		{"Multiple seconds", 45 * time.Second, "45s"},
		{"One minute", time.Minute, "1m"},
		{"Minutes and seconds", 2*time.Minute + 30*time.Second, "2m30s"},
		{"One hour", time.Hour, "1h"},
		{"Hours and minutes", time.Hour + 15*time.Minute, "1h15m"},
		{"Multiple hours", 3*time.Hour + 45*time.Minute, "3h45m"},
		{"Hours only (no minutes)", 2 * time.Hour, "2h"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := FormatETA(tc.eta)
			if result != tc.expected {
				t.Errorf("FormatETA(%v) = %q, want %q", tc.eta, result, tc.expected)
			}
		})
	}
}

// TestFormatProgressBarWithETA verifies combined progress and ETA formatting.
func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	for _, progress := range []float64{0, 0.5, 1.0} {
		result := FormatProgressBarWithETA(progress, 30*time.Second, 10)

		if !strings.Contains(result, "ETA:") {
			t.Errorf("result should contain 'ETA:', got %q", result)
		}
		if !strings.Contains(result, "%") {
			t.Errorf("result should contain '%%', got %q", result)
		}
		if !strings.Contains(result, "[") || !strings.Contains(result, "]") {
			t.Errorf("result should contain progress bar brackets, got %q", result)
		}
	}
}

// TestProgressWithETAEdgeCases verifies edge case handling.
func TestProgressWithETAEdgeCases(t *testing.T) {
	t.Parallel()
	t.Run("Progress exceeds 1.0", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(1)
		p.Update(0, 1.5)
		if progress := p.CalculateAverage(); progress < 0 || progress > 1 {
			t.Errorf("progress should be clamped to [0, 1], got %f", progress)
		}
	})

	t.Run("Negative progress", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(1)
		p.Update(0, -0.5)
		if progress := p.CalculateAverage(); progress < 0 || progress > 1 {
			t.Errorf("progress should be clamped to [0, 1], got %f", progress)
		}
	})

	t.Run("Invalid worker index", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(2)
		// Should not panic with invalid index
		p.UpdateWithETA(5, 0.5)
		p.UpdateWithETA(-1, 0.5)
		if progress := p.CalculateAverage(); progress < 0 || progress > 1 {
			t.Errorf("progress should be valid, got %f", progress)
		}
	})
}

// TestETACapping verifies that ETA is capped at reasonable values.
func TestETACapping(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(1)
	p.Update(0, 0.001)         // Very small progress
	p.progressRate = 0.0000001 // Very slow rate

	if eta := p.GetETA(); eta > 24*time.Hour {
		t.Errorf("ETA = %v, should be capped at %v", eta, 24*time.Hour)
	}
}

// TestProgressBar verifies progress bar rendering.
func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		length   int
		expected string
	}{
		{0.0, 10, "░░░░░░░░░░"},
		{0.5, 10, "█████░░░░░"},
		{1.0, 10, "██████████"},
		{1.2, 10, "██████████"}, // Cap at 1.0
		{-0.1, 10, "░░░░░░░░░░"}, // Floor at 0.0
	}

	for _, tt := range tests {
		got := ProgressBar(tt.progress, tt.length)
		if got != tt.expected {
			t.Errorf("ProgressBar(%f, %d) = %s; want %s", tt.progress, tt.length, got, tt.expected)
		}
	}
}

// TestFormatExecutionDuration verifies duration formatting.
func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}

	for _, tt := range tests {
		got := FormatExecutionDuration(tt.d)
		if got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

// TestFormatNumberString verifies thousand separator formatting.
func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}

	for _, tt := range tests {
		got := FormatNumberString(tt.input)
		if got != tt.expected {
			t.Errorf("FormatNumberString(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

// TestFormatBytes verifies binary-unit byte formatting.
func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n        uint64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.expected {
			t.Errorf("FormatBytes(%d) = %q; want %q", tt.n, got, tt.expected)
		}
	}
}
