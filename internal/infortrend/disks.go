package infortrend

import (
	"fmt"
	"strconv"

	"infortrend-exporter/internal/utils"
	"infortrend-exporter/pkg/types"
)

// diskStatusText maps the hddStatus code to its display text. Both
// dialects share this table. Codes 128-143 are foreign devices reported
// by their SCSI peripheral device type.
var diskStatusText = map[int]string{
	0:   "New Drive",
	1:   "On-Line Drive",
	2:   "Used Drive",
	3:   "Spare Drive",
	4:   "Drive Initialization in Progress",
	5:   "Drive Rebuild in Progress",
	6:   "Add Drive to Logical Drive in Progress",
	9:   "Global Spare Drive",
	17:  "Drive is in process of Cloning another Drive",
	18:  "Drive is a valid Clone of another Drive",
	19:  "Drive is in process of Copying from another Drive (for Copy/Replace LD Expansion function)",
	63:  "Drive Absent",
	128: "SCSI Device (Type 0)",
	129: "SCSI Device (Type 1)",
	130: "SCSI Device (Type 2)",
	131: "SCSI Device (Type 3)",
	132: "SCSI Device (Type 4)",
	133: "SCSI Device (Type 5)",
	134: "SCSI Device (Type 6)",
	135: "SCSI Device (Type 7)",
	136: "SCSI Device (Type 8)",
	137: "SCSI Device (Type 9)",
	138: "SCSI Device (Type 10)",
	139: "SCSI Device (Type 11)",
	140: "SCSI Device (Type 12)",
	141: "SCSI Device (Type 13)",
	142: "SCSI Device (Type 14)",
	143: "SCSI Device (Type 15)",
	252: "Missing Global Spare Drive",
	253: "Missing Spare Drive",
	254: "Missing Drive",
	255: "Failed Drive",
}

// Codes treated as healthy. Dialect B additionally accepts 63 ("Drive
// Absent") since unpopulated slots are enumerated there.
var (
	diskOKStatesA = map[int]bool{1: true, 3: true, 9: true}
	diskOKStatesB = map[int]bool{1: true, 3: true, 9: true, 63: true}
)

// ParseDiskRows converts raw disk table rows into per-slot records. The
// first row to claim a slot wins. Dialect A slots are the raw slot
// column; dialect B slots are the numeric disk index, falling back to the
// row position when that column is zero or unreadable.
func ParseDiskRows(dialect types.Dialect, rows [][]string, opts Options) map[string]types.DiskRecord {
	parsed := make(map[string]types.DiskRecord, len(rows))
	for i, row := range rows {
		var rec types.DiskRecord
		if dialect == types.DialectB {
			if opts.SkipInternalDisk && i == 0 {
				continue
			}
			rec.Slot = strconv.Itoa(i)
			if no := utils.ParseOptionalInt(field(row, 0)); no.Valid && no.Value != 0 {
				rec.Slot = strconv.Itoa(no.Value)
			}
			rec.State = utils.ParseOptionalInt(field(row, 1))
		} else {
			rec.Slot = field(row, 0)
			rec.State = utils.ParseOptionalInt(field(row, 1))
			rec.Description = diskDescription(row)
		}
		if _, seen := parsed[rec.Slot]; seen {
			continue
		}
		parsed[rec.Slot] = rec
	}
	return parsed
}

// diskDescription renders the dialect-A summary prefix
// "<model> <version> <serial>, <size>, ". The size chunk is dropped when
// the raw size or block-shift column does not parse.
func diskDescription(row []string) string {
	desc := fmt.Sprintf("%s %s %s, ", field(row, 2), field(row, 3), field(row, 4))
	size, ok := utils.DiskSizeString(utils.ParseOptionalInt(field(row, 5)), utils.ParseOptionalInt(field(row, 6)))
	if ok {
		desc += size + ", "
	}
	return desc
}

// DiskStateText returns the display text of a disk status code, or
// "unknown" when the code is absent or unmapped.
func DiskStateText(state types.OptionalInt) string {
	if state.Valid {
		if text, ok := diskStatusText[state.Value]; ok {
			return text
		}
	}
	return "unknown"
}

// CheckDisk runs the status check for one discovered disk slot.
func CheckDisk(dialect types.Dialect, item string, section map[string]types.DiskRecord) []types.Result {
	rec, ok := section[item]
	if !ok {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  "disk data is not valid",
		}}
	}
	text, known := "", false
	if rec.State.Valid {
		text, known = diskStatusText[rec.State.Value]
	}
	if !known {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  fmt.Sprintf("%sStatus is %s", rec.Description, rec.State),
		}}
	}
	okStates := diskOKStatesA
	if dialect == types.DialectB {
		okStates = diskOKStatesB
	}
	severity := types.SeverityWarning
	switch {
	case okStates[rec.State.Value]:
		severity = types.SeverityOK
	case rec.State.Value > 63:
		severity = types.SeverityCritical
	}
	return []types.Result{{Severity: severity, Summary: rec.Description + text}}
}
