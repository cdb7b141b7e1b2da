package utils

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"infortrend-exporter/pkg/types"
)

// ParseOptionalInt converts a raw SNMP string field to an integer, marking
// the result absent when the field does not parse. Absent is a valid state
// for downstream decoding, never an error.
func ParseOptionalInt(raw string) types.OptionalInt {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return types.OptionalInt{}
	}
	return types.Int(value)
}

// DiskSizeString renders a disk capacity given the raw size field and the
// block-size exponent field (bytes = size * 2^blockShift). Returns false
// when either field is absent or out of a sane range.
func DiskSizeString(size, blockShift types.OptionalInt) (string, bool) {
	if !size.Valid || !blockShift.Valid {
		return "", false
	}
	if size.Value < 0 || blockShift.Value < 0 || blockShift.Value > 62 {
		return "", false
	}
	return humanize.Bytes(uint64(size.Value) << uint(blockShift.Value)), true
}
