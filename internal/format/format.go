// Package format provides human-readable rendering of durations and
// storage sizes for CLI output.
package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display. It shows microseconds for
// durations less than a millisecond, milliseconds for durations less than a
// second, and the default string representation otherwise. This approach
// provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// LimbFootprint renders a limb count as its byte footprint with a binary
// unit suffix (8 bytes per storage word).
//
// Parameters:
//   - limbs: The number of 64-bit storage words.
//
// Returns:
//   - string: A formatted size such as "512 B" or "4.0 KiB".
func LimbFootprint(limbs int) string {
	bytes := float64(limbs) * 8
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%.0f B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KiB", bytes/1024)
	default:
		return fmt.Sprintf("%.1f MiB", bytes/(1024*1024))
	}
}

// Bytes renders a byte count with a binary unit suffix.
//
// Parameters:
//   - n: The byte count to format.
//
// Returns:
//   - string: A formatted size such as "512 B", "4.0 KiB" or "1.5 GiB".
func Bytes(n uint64) string {
	b := float64(n)
	switch {
	case b < 1024:
		return fmt.Sprintf("%.0f B", b)
	case b < 1024*1024:
		return fmt.Sprintf("%.1f KiB", b/1024)
	case b < 1024*1024*1024:
		return fmt.Sprintf("%.1f MiB", b/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GiB", b/(1024*1024*1024))
	}
}

// BitLength renders a bit count with a thousands separator every three
// digits, easing comparison of large magnitudes.
//
// Parameters:
//   - bits: The bit count to format.
//
// Returns:
//   - string: The grouped decimal representation, e.g. "1,048,576".
func BitLength(bits int) string {
	s := fmt.Sprintf("%d", bits)
	if len(s) <= 3 || bits < 0 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
