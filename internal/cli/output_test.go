package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/u128calc/internal/uint128"
)

func TestFormatQuietResult(t *testing.T) {
	got := FormatQuietResult(uint128.New(0x2a, 0x10))
	want := "0x0000000000000010000000000000002a"
	if got != want {
		t.Errorf("FormatQuietResult() = %q, want %q", got, want)
	}
}

func TestDisplayQuietResult(t *testing.T) {
	var buf bytes.Buffer
	DisplayQuietResult(&buf, uint128.From64(42))
	want := "0x0000000000000000000000000000002a\n"
	if buf.String() != want {
		t.Errorf("DisplayQuietResult() wrote %q, want %q", buf.String(), want)
	}
}

func TestDisplayResult(t *testing.T) {
	var buf bytes.Buffer
	DisplayResult(uint128.From64(42), "mul", time.Millisecond, false, &buf)

	out := buf.String()
	if !strings.Contains(out, "Result (mul):") {
		t.Errorf("output missing result header: %q", out)
	}
	if !strings.Contains(out, "0x0000000000000000000000000000002a") {
		t.Errorf("output missing hex rendering: %q", out)
	}
	if !strings.Contains(out, "42") {
		t.Errorf("output missing decimal rendering: %q", out)
	}
}

func TestDisplayResultVerbose(t *testing.T) {
	var buf bytes.Buffer
	DisplayResult(uint128.From64(1234567), "add", time.Millisecond, true, &buf)

	if !strings.Contains(buf.String(), "1,234,567") {
		t.Errorf("verbose output missing grouped decimal: %q", buf.String())
	}
}

func TestWriteResultToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.txt")

	cfg := OutputConfig{OutputFile: path}
	err := WriteResultToFile(uint128.New(1, 0xFFFFFFFFFFFFFFFE), "mul", time.Second, cfg)
	if err != nil {
		t.Fatalf("WriteResultToFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "# Operation: mul") {
		t.Errorf("file missing operation header:\n%s", content)
	}
	if !strings.Contains(content, "hex = 0xfffffffffffffffe0000000000000001") {
		t.Errorf("file missing hex value:\n%s", content)
	}
	if !strings.Contains(content, "dec = ") {
		t.Errorf("file missing decimal value:\n%s", content)
	}
}

func TestWriteResultToFileCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "result.txt")

	cfg := OutputConfig{OutputFile: path}
	if err := WriteResultToFile(uint128.One, "add", time.Second, cfg); err != nil {
		t.Fatalf("WriteResultToFile() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("result file was not created: %v", err)
	}
}

func TestWriteResultToFileNoPath(t *testing.T) {
	if err := WriteResultToFile(uint128.One, "add", time.Second, OutputConfig{}); err != nil {
		t.Errorf("expected nil error for empty output path, got %v", err)
	}
}

func TestDisplayResultWithConfigQuiet(t *testing.T) {
	var buf bytes.Buffer
	cfg := OutputConfig{Quiet: true}

	err := DisplayResultWithConfig(&buf, uint128.From64(7), "mul", time.Second, cfg)
	if err != nil {
		t.Fatalf("DisplayResultWithConfig() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Result") {
		t.Errorf("quiet output should not contain headers: %q", out)
	}
	if !strings.Contains(out, "0x00000000000000000000000000000007") {
		t.Errorf("quiet output missing hex value: %q", out)
	}
}

func TestDisplayResultWithConfigFileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	var buf bytes.Buffer
	cfg := OutputConfig{OutputFile: path}

	err := DisplayResultWithConfig(&buf, uint128.From64(7), "mul", time.Second, cfg)
	if err != nil {
		t.Fatalf("DisplayResultWithConfig() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Result saved to") {
		t.Errorf("output missing save confirmation: %q", buf.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("result file was not created: %v", err)
	}
}
