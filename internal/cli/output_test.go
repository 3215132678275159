package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/mpint/internal/metrics"
	"github.com/agbru/mpint/internal/mpint"
	"github.com/agbru/mpint/internal/sysmon"
	"github.com/agbru/mpint/internal/ui"
)

func init() {
	// Color codes would make the substring assertions brittle.
	ui.SetCurrentTheme(ui.NoColorTheme)
}

func mustSetUint64(t *testing.T, v uint64) *mpint.Int {
	t.Helper()
	z := mpint.New()
	if err := z.SetUint64(v); err != nil {
		t.Fatalf("SetUint64(%d): %v", v, err)
	}
	return z
}

func TestFormatLimbs(t *testing.T) {
	z := mustSetUint64(t, 0xABC)
	if got, want := FormatLimbs(z), "000000000000abc"; got != want {
		t.Errorf("FormatLimbs = %q, want %q", got, want)
	}

	// Two limbs: most significant first, space separated.
	two := mpint.New()
	if err := two.SetPow2(mpint.LimbBits); err != nil {
		t.Fatalf("SetPow2: %v", err)
	}
	if got, want := FormatLimbs(two), "000000000000001 000000000000000"; got != want {
		t.Errorf("FormatLimbs = %q, want %q", got, want)
	}

	if got, want := FormatLimbs(mpint.New()), "000000000000000"; got != want {
		t.Errorf("FormatLimbs(zero) = %q, want %q", got, want)
	}
}

func TestDisplayResult(t *testing.T) {
	var buf bytes.Buffer
	res := GenerationResult{
		Index:    3,
		Value:    mustSetUint64(t, 40), // 0b101000: 6 bits, 3 trailing zeros
		Duration: 42 * time.Microsecond,
	}
	DisplayResult(&buf, res, false)
	out := buf.String()
	for _, want := range []string{"#3", "sign=+", "bits=6", "lsb-zeros=3", "42µs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "000000000000028") {
		t.Error("limb dump shown without showLimbs")
	}
}

func TestDisplayResult_ShowLimbs(t *testing.T) {
	var buf bytes.Buffer
	res := GenerationResult{Value: mustSetUint64(t, 0x28)}
	DisplayResult(&buf, res, true)
	if !strings.Contains(buf.String(), "000000000000028") {
		t.Errorf("limb dump missing:\n%s", buf.String())
	}
}

func TestDisplayResult_Error(t *testing.T) {
	var buf bytes.Buffer
	DisplayResult(&buf, GenerationResult{Index: 1, Err: errors.New("entropy exhausted")}, false)
	out := buf.String()
	if !strings.Contains(out, "generation failed") || !strings.Contains(out, "entropy exhausted") {
		t.Errorf("unexpected failure output:\n%s", out)
	}
}

func TestDisplaySummaryTable(t *testing.T) {
	var buf bytes.Buffer
	results := []GenerationResult{
		{Index: 0, Value: mustSetUint64(t, 1 << 20), Duration: 15 * time.Microsecond},
		{Index: 1, Err: errors.New("boom"), Duration: 2 * time.Microsecond},
	}
	DisplaySummaryTable(&buf, results)
	out := buf.String()
	for _, want := range []string{"Generation Summary", "Slot", "Bits", "Duration", "Status", "✅ Success", "❌ Failure (boom)", "21"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	var buf bytes.Buffer
	before := metrics.MemorySnapshot{HeapAlloc: 1024 * 1024, NumGC: 3}
	after := metrics.MemorySnapshot{HeapAlloc: 3 * 1024 * 1024, NumGC: 5}
	DisplayMemoryStats(&buf, before, after)
	out := buf.String()
	for _, want := range []string{"Live heap:  3.0 MiB", "Heap delta: 2.0 MiB", "GC cycles:  2"} {
		if !strings.Contains(out, want) {
			t.Errorf("memory stats missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	DisplayMemoryStats(&buf, after, before)
	if !strings.Contains(buf.String(), "Heap delta: -2.0 MiB") {
		t.Errorf("negative delta not rendered:\n%s", buf.String())
	}
}

func TestDisplayResourceStats(t *testing.T) {
	var buf bytes.Buffer
	DisplayResourceStats(&buf, sysmon.Stats{CPUPercent: 12.5, MemPercent: 40.25, ProcRSS: 32 * 1024 * 1024})
	out := buf.String()
	for _, want := range []string{"CPU:         12.5%", "Memory:      40.2%", "Process RSS: 32.0 MiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats missing %q:\n%s", want, out)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 3); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("ab", 0); got != "ab" {
		t.Errorf("padRight zero = %q", got)
	}
	if got := padRight("ab", -2); got != "ab" {
		t.Errorf("padRight negative = %q", got)
	}
}
