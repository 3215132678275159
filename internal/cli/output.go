// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplaySummaryTable].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatLimbs].

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/mpint/internal/format"
	"github.com/agbru/mpint/internal/metrics"
	"github.com/agbru/mpint/internal/mpint"
	"github.com/agbru/mpint/internal/sysmon"
	"github.com/agbru/mpint/internal/ui"
)

// GenerationResult holds the outcome of one random integer generation.
type GenerationResult struct {
	// Index identifies the slot within the batch, starting at 0.
	Index int
	// Value is the generated integer. Nil when Err is set.
	Value *mpint.Int
	// Duration is the wall-clock time taken to generate the value.
	Duration time.Duration
	// Err is non-nil when the generation failed.
	Err error
}

// FormatLimbs renders the limbs of an integer as a hexadecimal dump,
// most significant limb first. A value with no used limbs renders as
// a single zero limb.
//
// Parameters:
//   - z: The integer to render.
//
// Returns:
//   - string: The limb dump, one 15-hex-digit group per limb.
func FormatLimbs(z *mpint.Int) string {
	if z == nil || z.Used() == 0 {
		return "000000000000000"
	}
	var b strings.Builder
	for i := z.Used() - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%015x", z.Limb(i))
	}
	return b.String()
}

// DisplayResult writes one generation result to the output writer with
// bit length, memory footprint, and duration. When showLimbs is true
// the raw limb dump is appended on a second line.
//
// Parameters:
//   - out: The output writer.
//   - res: The generation result to display.
//   - showLimbs: Whether to include the raw limb dump.
func DisplayResult(out io.Writer, res GenerationResult, showLimbs bool) {
	if res.Err != nil {
		fmt.Fprintf(out, "%s#%d generation failed: %v%s\n",
			ui.ColorRed(), res.Index, res.Err, ui.ColorReset())
		return
	}
	sign := "+"
	if res.Value.Sign() == mpint.Negative {
		sign = "-"
	}
	fmt.Fprintf(out, "%s#%d%s  sign=%s  bits=%s  limbs=%d (%s)  lsb-zeros=%d  %s%s%s\n",
		ui.ColorPrimary(), res.Index, ui.ColorReset(),
		sign,
		format.BitLength(res.Value.BitLen()),
		res.Value.Used(),
		format.LimbFootprint(res.Value.Used()),
		res.Value.TrailingZeros(),
		ui.ColorSecondary(), format.Duration(res.Duration), ui.ColorReset())
	if showLimbs {
		fmt.Fprintf(out, "    %s\n", FormatLimbs(res.Value))
	}
}

// DisplaySummaryTable displays the batch summary table with per-slot
// bit lengths, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
//
// Parameters:
//   - out: The output writer.
//   - results: The generation results, in slot order.
func DisplaySummaryTable(out io.Writer, results []GenerationResult) {
	fmt.Fprintf(out, "\n--- Generation Summary ---\n")

	// Find the maximum column widths for proper alignment.
	maxBitsLen := 4 // "Bits" header length
	maxDurationLen := 8
	for _, res := range results {
		if res.Value != nil {
			bits := format.BitLength(res.Value.BitLen())
			if len(bits) > maxBitsLen {
				maxBitsLen = len(bits)
			}
		}
		duration := format.Duration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sSlot%s   %sBits%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxBitsLen-4),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status, bits string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			bits = "-"
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			bits = format.BitLength(res.Value.BitLen())
		}
		duration := format.Duration(res.Duration)
		fmt.Fprintf(out, "%s%-4d%s   %s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Index, ui.ColorReset(),
			ui.ColorSecondary(), bits, ui.ColorReset(), padRight("", maxBitsLen-len(bits)),
			ui.ColorSecondary(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns s followed by enough spaces to pad length characters.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayMemoryStats shows heap statistics collected around the batch.
//
// Parameters:
//   - out: The output writer.
//   - before: The snapshot taken before generation started.
//   - after: The snapshot taken after generation finished.
func DisplayMemoryStats(out io.Writer, before, after metrics.MemorySnapshot) {
	delta := metrics.HeapDelta(before, after)
	deltaStr := format.Bytes(uint64(delta))
	if delta < 0 {
		deltaStr = "-" + format.Bytes(uint64(-delta))
	}
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Live heap:  %s\n", format.Bytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Heap delta: %s\n", deltaStr)
	fmt.Fprintf(out, "  GC cycles:  %d\n", after.NumGC-before.NumGC)
}

// DisplayResourceStats shows resource usage sampled after the batch.
//
// Parameters:
//   - out: The output writer.
//   - stats: The resource snapshot to display.
func DisplayResourceStats(out io.Writer, stats sysmon.Stats) {
	fmt.Fprintf(out, "\nResource Usage:\n")
	fmt.Fprintf(out, "  CPU:         %.1f%%\n", stats.CPUPercent)
	fmt.Fprintf(out, "  Memory:      %.1f%%\n", stats.MemPercent)
	fmt.Fprintf(out, "  Process RSS: %.1f MiB\n", float64(stats.ProcRSS)/(1024*1024))
}
