package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/prepack/pkg/clock"
)

func TestParseAddClockStatements(t *testing.T) {
	input := `
	# pre-pack constraints
	ctx.addClock("clk_picosoc", 12)
	ctx.addClock("clk", 48)
	# ctx.addClock("pll.clock_wire", 48)
	ctx.addClock("sig_clk", 50)
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	s, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(s.Calls) != 3 {
		t.Fatalf("Expected 3 calls, got %d", len(s.Calls))
	}

	domains, err := s.Domains()
	if err != nil {
		t.Fatalf("Domains failed: %v", err)
	}
	want := []clock.Domain{
		{Name: "clk_picosoc", FrequencyMHz: 12},
		{Name: "clk", FrequencyMHz: 48},
		{Name: "sig_clk", FrequencyMHz: 50},
	}
	if diff := cmp.Diff(want, domains); diff != "" {
		t.Errorf("domains mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyScript(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	s, err := parser.ParseString("# nothing here\n")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(s.Calls) != 0 {
		t.Errorf("Expected no calls, got %d", len(s.Calls))
	}
}

func TestParseRejectsUnsupportedStatements(t *testing.T) {
	inputs := []string{
		`ctx.addClock("clk")`,
		`ctx.addClock("clk", abc)`,
		`ctx.addBel("clk", 48)`,
		`other.addClock("clk", 48)`,
		`import os`,
	}

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	for _, input := range inputs {
		if _, err := parser.ParseString(input); err == nil {
			t.Errorf("Expected parse error for %q", input)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pre_pack.py")
	if err := os.WriteFile(path, []byte(`ctx.addClock("clk", 36)`+"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	s, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(s.Calls) != 1 || s.Calls[0].Name != "clk" || s.Calls[0].Frequency != "36" {
		t.Errorf("unexpected calls: %+v", s.Calls)
	}
	if s.Calls[0].Pos.Line != 1 {
		t.Errorf("Expected call on line 1, got %d", s.Calls[0].Pos.Line)
	}
}

func TestParseFileMissing(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	if _, err := parser.ParseFile(filepath.Join(t.TempDir(), "absent.py")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestScriptApply(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	s, err := parser.ParseString(`ctx.addClock("clk", 48) ctx.addClock("sig_clk", 50)`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	rec := clock.NewRecorder()
	if err := s.Apply(rec); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := rec.Calls(); len(got) != 2 || got[1].Name != "sig_clk" {
		t.Errorf("unexpected replay: %v", got)
	}
}
