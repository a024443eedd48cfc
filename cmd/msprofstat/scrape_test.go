package msprofstat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScrape_Lines(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run_000", "3000")
	writeRun(t, root, "run_001", "1000")
	writeRun(t, root, "run_002", "2000")

	out, err := executeCommand(t, "scrape", root)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	want := []string{
		"[KERNEL] AVG_MS=2.000",
		"[KERNEL] P50_MS=2.000",
		"[KERNEL] P90_MS=2.800",
		"[KERNEL] SAMPLES=3",
		"[KERNEL] SOURCE=" + filepath.Join(root, "run_002", "op_summary.csv"),
	}
	got := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines: %q", len(got), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestScrape_MissingRootPrintsNA(t *testing.T) {
	out, err := executeCommand(t, "scrape", "--msprof-root", filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing root must not fail: %v", err)
	}
	for _, s := range []string{"AVG_MS=NA", "P50_MS=NA", "P90_MS=NA", "SAMPLES=0", "SOURCE=NA"} {
		if !strings.Contains(out, s) {
			t.Fatalf("missing %q in %q", s, out)
		}
	}
}

func TestScrape_RequiresRoot(t *testing.T) {
	if _, err := executeCommand(t, "scrape"); err == nil {
		t.Fatalf("expected error without a root")
	}
}

func TestScrape_JSON(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run_000", "1500")

	out, err := executeCommand(t, "scrape", root, "--json")
	if err != nil {
		t.Fatalf("scrape --json: %v", err)
	}
	if !strings.Contains(out, `"sample_count": 1`) || !strings.Contains(out, `"avg_ms": 1.5`) {
		t.Fatalf("unexpected json: %s", out)
	}
}

func TestScrape_PatternFlag(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run_000", "1500")

	// no row matches, but op_summary falls back to summing every row
	out, err := executeCommand(t, "scrape", root, "--pattern", "conv")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if !strings.Contains(out, "[KERNEL] AVG_MS=1.500") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestScrape_Pretty(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run_000", "1500")

	out, err := executeCommand(t, "scrape", root, "--pretty")
	if err != nil {
		t.Fatalf("scrape --pretty: %v", err)
	}
	if strings.Contains(out, "[KERNEL]") || !strings.Contains(out, "1.500") {
		t.Fatalf("expected styled summary, got: %s", out)
	}
}

func TestScrape_EmptyPatternMatchesEveryRow(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "run_000")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "Op Name,Duration(us)\nCast_1,1000\nAdd_2,2000\n"
	if err := os.WriteFile(filepath.Join(dir, "task_time.csv"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "scrape", root, "--pattern", "")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if !strings.Contains(out, "[KERNEL] AVG_MS=3.000") || !strings.Contains(out, "[KERNEL] SAMPLES=1") {
		t.Fatalf("empty pattern must match every row, got: %s", out)
	}

	// Without the flag the default pattern applies and nothing matches.
	out, err = executeCommand(t, "scrape", root)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if !strings.Contains(out, "[KERNEL] SAMPLES=0") {
		t.Fatalf("default pattern must not match, got: %s", out)
	}
}

func TestScrape_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run_000", "1000")

	out, err := executeCommand(t, "scrape", filepath.Join(root, "run_000", "op_summary.csv"))
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if !strings.Contains(out, "[KERNEL] SAMPLES=0") || !strings.Contains(out, "SOURCE=NA") {
		t.Fatalf("a file root holds no runs, got: %s", out)
	}
}
