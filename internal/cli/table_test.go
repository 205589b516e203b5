package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"ROLE", "HEX"})
	table.AddRow([]string{"theme", "#0395DE"})
	table.AddRow([]string{"sidebar_text", "#333333"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Render() produced %d lines, want 4:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "ROLE") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "----") {
		t.Errorf("separator line = %q", lines[1])
	}

	// Columns align on the widest cell.
	hexCol := strings.Index(lines[0], "HEX")
	if hexCol < 0 {
		t.Fatalf("header missing HEX column: %q", lines[0])
	}
	for _, line := range lines[2:] {
		if !strings.HasPrefix(line[hexCol:], "#") {
			t.Errorf("row %q not aligned at column %d", line, hexCol)
		}
	}
}

func TestTableShortRowPadded(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})

	out := table.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("Render() dropped the short row:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render() on empty table = %q, want empty", out)
	}
}
