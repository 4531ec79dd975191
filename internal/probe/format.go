package probe

import "fmt"

// sizeUnits are the units selected by successive divisions by 1024.
//
//nolint:gochecknoglobals // Config constant
var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count as a human-readable string. Raw byte
// values render with no decimals, divided values with two. The same rule
// applies to per-file sizes and directory aggregates.
func FormatSize(size uint64) string {
	value := float64(size)
	unit := 0

	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%.0f %s", value, sizeUnits[unit])
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}
