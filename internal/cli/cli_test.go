package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/nathaniel-may/biscuit-packing/pkg/errors"
)

// runCLI executes the root command with isolated cache and config dirs.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestSingleCommand(t *testing.T) {
	dir := t.TempDir()
	err := runCLI(t, "single", "-n", "3", "-w", "10", "-l", "10",
		"-r", "2000", "--seed", "1", "-o", dir, "-f", "svg,json")
	if err != nil {
		t.Fatalf("single: %v", err)
	}

	assertFile(t, filepath.Join(dir, "3_biscuits_100X100_pan.svg"))
	assertFile(t, filepath.Join(dir, "3_biscuits_100X100_pan.json"))
}

func TestSingleCommandScale(t *testing.T) {
	dir := t.TempDir()
	err := runCLI(t, "single", "-n", "2", "-w", "4", "-l", "6", "--scale", "1",
		"-r", "500", "--seed", "3", "-o", dir, "--no-cache")
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	assertFile(t, filepath.Join(dir, "2_biscuits_4X6_pan.svg"))
}

func TestMultiCommand(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "runs.xlsx")
	err := runCLI(t, "multi", "--start", "1", "--end", "3", "-w", "5", "-l", "5",
		"-r", "500", "--seed", "2", "-o", dir, "--workers", "2", "--report", report)
	if err != nil {
		t.Fatalf("multi: %v", err)
	}

	for _, name := range []string{
		"1_biscuits_50X50_pan.svg",
		"2_biscuits_50X50_pan.svg",
		"3_biscuits_50X50_pan.svg",
	} {
		assertFile(t, filepath.Join(dir, name))
	}
	assertFile(t, report)
}

func TestRunCommandsUseConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "formats = [\"json\"]\nscale = 2\n")

	err := runCLI(t, "--config", cfg, "single", "-n", "1", "-w", "3", "-l", "3",
		"-r", "200", "--seed", "4", "-o", dir)
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	assertFile(t, filepath.Join(dir, "1_biscuits_6X6_pan.json"))
	if _, err := os.Stat(filepath.Join(dir, "1_biscuits_6X6_pan.svg")); !os.IsNotExist(err) {
		t.Error("config formats should replace the svg default")
	}
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code perrors.Code
	}{
		{"zero biscuits", []string{"single", "-n", "0", "-w", "1", "-l", "1"}, perrors.ErrCodeInvalidBiscuits},
		{"reversed range", []string{"multi", "--start", "5", "--end", "2", "-w", "1", "-l", "1"}, perrors.ErrCodeInvalidRange},
		{"bad pan", []string{"single", "-n", "2", "--pan-width=-1", "-l", "1"}, perrors.ErrCodeInvalidPan},
		{"zero runs", []string{"single", "-n", "2", "-w", "1", "-l", "1", "-r", "0"}, perrors.ErrCodeInvalidBudget},
		{"zero scale", []string{"single", "-n", "2", "-w", "1", "-l", "1", "--scale", "0"}, perrors.ErrCodeInvalidInput},
		{"bad format", []string{"single", "-n", "2", "-w", "1", "-l", "1", "-f", "gif"}, perrors.ErrCodeInvalidFormat},
		{"bad schedule", []string{"single", "-n", "2", "-w", "1", "-l", "1", "--schedule", "slow"}, perrors.ErrCodeInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(t, append(tt.args, "-o", t.TempDir())...)
			if !perrors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRunCommandsRequireFlags(t *testing.T) {
	if err := runCLI(t, "single", "-w", "1", "-l", "1"); err == nil {
		t.Error("single without -n should fail")
	}
	if err := runCLI(t, "multi", "--start", "1", "-w", "1", "-l", "1"); err == nil {
		t.Error("multi without --end should fail")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,PDF", []string{"svg", "pdf"}},
		{" png , dxf ", []string{"png", "dxf"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseFormats(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}
