// Package numerator formats allocated sequence values as invoice numbers.
package numerator

import (
	"fmt"
	"strconv"
	"strings"
)

// Format controls how a sequence value is rendered.
// The zero value renders the plain decimal value ("1", "2", ...).
type Format struct {
	// Prefix added before the number (e.g. "INV-")
	Prefix string

	// PadWidth is the minimum digit count, zero-padded (0 disables padding)
	PadWidth int
}

// String renders num according to the format.
func (f Format) String(num int64) string {
	if f.PadWidth > 0 {
		return fmt.Sprintf("%s%0*d", f.Prefix, f.PadWidth, num)
	}
	return f.Prefix + strconv.FormatInt(num, 10)
}

// Parse extracts the numeric part of a formatted number.
// Returns -1 if the value does not match the format.
func (f Format) Parse(formatted string) int64 {
	rest, ok := strings.CutPrefix(formatted, f.Prefix)
	if !ok || rest == "" {
		return -1
	}
	num, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || num < 0 {
		return -1
	}
	return num
}
