package infortrend

import (
	"fmt"

	"infortrend-exporter/internal/utils"
	"infortrend-exporter/pkg/types"
)

// logicalDriveStatusText maps the ldStatus code (after masking the
// off-line flag) to its display text. Dialect B firmware additionally
// reports 64 for a good drive; that case is handled in CheckLogicalDrive.
var logicalDriveStatusText = map[int]string{
	0: "Good",
	1: "Rebuilding",
	2: "Initializing",
	3: "Degraded",
	4: "Dead",
	5: "Invalid",
	6: "Incomplete",
	7: "Drive Missing",
}

// offlinePrefix announces bit 7 of the logical drive status, the
// off-line (read/write suspended) flag.
const offlinePrefix = "Logical Drive Off-line (RW)"

// ParseLogicalDriveRows converts raw logical-drive table rows into
// per-drive records keyed by the drive id column. The first row to claim
// an id wins.
func ParseLogicalDriveRows(rows [][]string) map[string]types.LogicalDriveRecord {
	parsed := make(map[string]types.LogicalDriveRecord, len(rows))
	for _, row := range rows {
		id := field(row, 0)
		if _, seen := parsed[id]; seen {
			continue
		}
		parsed[id] = types.LogicalDriveRecord{State: utils.ParseOptionalInt(field(row, 1))}
	}
	return parsed
}

// LogicalDriveStateText returns the display text of a logical drive
// state code after masking the off-line flag, or "unknown" for absent
// and unmapped codes.
func LogicalDriveStateText(dialect types.Dialect, state types.OptionalInt) string {
	if !state.Valid {
		return "unknown"
	}
	value := state.Value & 127
	if dialect == types.DialectB && value == 64 {
		return "Good"
	}
	if text, ok := logicalDriveStatusText[value]; ok {
		return text
	}
	return "unknown"
}

// CheckLogicalDrive runs the status check for one discovered logical
// drive. Bit 7 of the state flags the drive off-line and is reported as
// a prefix on the masked state's text.
func CheckLogicalDrive(dialect types.Dialect, item string, section map[string]types.LogicalDriveRecord) []types.Result {
	rec, ok := section[item]
	if !ok {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  "cannot parse: no logical drive data",
		}}
	}
	if !rec.State.Valid {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  fmt.Sprintf("Status is %s", rec.State),
		}}
	}
	state := rec.State.Value
	offline := state&128 == 128
	if offline {
		state &= 127
	}
	text, known := logicalDriveStatusText[state]
	if dialect == types.DialectB && state == 64 {
		text, known = "Good", true
	}
	if !known {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  fmt.Sprintf("Status is %d", state),
		}}
	}
	summary := text
	if offline {
		sep := " "
		if dialect == types.DialectB {
			sep = ", "
		}
		summary = offlinePrefix + sep + text
	}
	return []types.Result{{Severity: logicalDriveSeverity(dialect, state), Summary: summary}}
}

func logicalDriveSeverity(dialect types.Dialect, state int) types.Severity {
	switch {
	case state == 0 || (dialect == types.DialectB && state == 64):
		return types.SeverityOK
	case state == 1 || state == 2:
		return types.SeverityWarning
	default:
		return types.SeverityCritical
	}
}
