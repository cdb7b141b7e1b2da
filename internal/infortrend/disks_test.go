package infortrend

import (
	"testing"

	"infortrend-exporter/pkg/types"
)

func TestParseDiskRowsDialectA(t *testing.T) {
	rows := [][]string{
		{"1", "1", "ST3000DM001", "CC24", "Z1F12345", "5859375", "9"},
		{"2", "255", "ST3000DM001", "CC24", "Z1F99999", "5859375", "bad"},
		{"1", "63", "DUP", "DUP", "DUP", "0", "0"},
		{"3"},
	}

	parsed := ParseDiskRows(types.DialectA, rows, Options{})

	if len(parsed) != 3 {
		t.Fatalf("Expected 3 parsed disks, got %d", len(parsed))
	}

	disk, ok := parsed["1"]
	if !ok {
		t.Fatal("Expected slot 1 to be parsed")
	}
	if disk.State.Value != 1 {
		t.Errorf("Duplicate slot should not override first record, got state %s", disk.State)
	}
	if disk.Description != "ST3000DM001 CC24 Z1F12345, 3.0 GB, " {
		t.Errorf("Unexpected description %q", disk.Description)
	}

	// Unparseable block shift drops the size chunk.
	if parsed["2"].Description != "ST3000DM001 CC24 Z1F99999, " {
		t.Errorf("Unexpected description %q", parsed["2"].Description)
	}

	short := parsed["3"]
	if short.State.Valid {
		t.Errorf("Short row state should be absent, got %s", short.State)
	}
	if short.Description != "  , " {
		t.Errorf("Unexpected short row description %q", short.Description)
	}
}

func TestParseDiskRowsDialectB(t *testing.T) {
	rows := [][]string{
		{"0", "1"},
		{"2", "63"},
		{"0", "255"},
		{"junk", "5"},
	}

	// Legacy behavior keeps the internal disk and keys zero or
	// unreadable ids by row position.
	parsed := ParseDiskRows(types.DialectB, rows, Options{})
	if len(parsed) != 3 {
		t.Fatalf("Expected 3 parsed disks, got %d", len(parsed))
	}
	if parsed["0"].State.Value != 1 {
		t.Errorf("Expected row 0 keyed by position, got %+v", parsed["0"])
	}
	if parsed["2"].State.Value != 63 {
		t.Errorf("First claim of slot 2 should win, got %+v", parsed["2"])
	}
	if parsed["3"].State.Value != 5 {
		t.Errorf("Expected unreadable id keyed by position, got %+v", parsed["3"])
	}

	parsed = ParseDiskRows(types.DialectB, rows, Options{SkipInternalDisk: true})
	if len(parsed) != 2 {
		t.Fatalf("Expected 2 parsed disks with internal disk skipped, got %d", len(parsed))
	}
	if _, ok := parsed["0"]; ok {
		t.Error("Internal disk row should be skipped")
	}

	// Dialect B rows carry no description columns.
	if parsed["2"].Description != "" {
		t.Errorf("Expected empty description, got %q", parsed["2"].Description)
	}
}

func TestCheckDisk(t *testing.T) {
	section := map[string]types.DiskRecord{
		"1":  {Slot: "1", State: types.Int(1), Description: "ST3000DM001 CC24 Z1F12345, 3.0 GB, "},
		"2":  {Slot: "2", State: types.Int(63)},
		"3":  {Slot: "3", State: types.Int(255)},
		"4":  {Slot: "4", State: types.Int(5)},
		"5":  {Slot: "5", State: types.Int(77), Description: "X Y Z, "},
		"6":  {Slot: "6", State: types.OptionalInt{}, Description: "X Y Z, "},
		"7":  {Slot: "7", State: types.Int(130)},
		"8":  {Slot: "8", State: types.Int(200)},
		"9":  {Slot: "9", State: types.Int(9)},
		"19": {Slot: "19", State: types.Int(19)},
	}

	tests := []struct {
		name     string
		dialect  types.Dialect
		item     string
		expected types.Result
	}{
		{
			name:     "online drive with description",
			dialect:  types.DialectA,
			item:     "1",
			expected: types.Result{Severity: types.SeverityOK, Summary: "ST3000DM001 CC24 Z1F12345, 3.0 GB, On-Line Drive"},
		},
		{
			name:     "absent drive warns on dialect A",
			dialect:  types.DialectA,
			item:     "2",
			expected: types.Result{Severity: types.SeverityWarning, Summary: "Drive Absent"},
		},
		{
			name:     "absent drive is healthy on dialect B",
			dialect:  types.DialectB,
			item:     "2",
			expected: types.Result{Severity: types.SeverityOK, Summary: "Drive Absent"},
		},
		{
			name:     "failed drive",
			dialect:  types.DialectA,
			item:     "3",
			expected: types.Result{Severity: types.SeverityCritical, Summary: "Failed Drive"},
		},
		{
			name:     "rebuild in progress warns",
			dialect:  types.DialectA,
			item:     "4",
			expected: types.Result{Severity: types.SeverityWarning, Summary: "Drive Rebuild in Progress"},
		},
		{
			name:     "unknown status code",
			dialect:  types.DialectA,
			item:     "5",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "X Y Z, Status is 77"},
		},
		{
			name:     "absent status",
			dialect:  types.DialectA,
			item:     "6",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "X Y Z, Status is "},
		},
		{
			name:     "foreign scsi device is critical",
			dialect:  types.DialectA,
			item:     "7",
			expected: types.Result{Severity: types.SeverityCritical, Summary: "SCSI Device (Type 2)"},
		},
		{
			name:     "code above the scsi range is unknown",
			dialect:  types.DialectA,
			item:     "8",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "Status is 200"},
		},
		{
			name:     "global spare is healthy",
			dialect:  types.DialectB,
			item:     "9",
			expected: types.Result{Severity: types.SeverityOK, Summary: "Global Spare Drive"},
		},
		{
			name:     "copy in progress warns",
			dialect:  types.DialectA,
			item:     "19",
			expected: types.Result{Severity: types.SeverityWarning, Summary: "Drive is in process of Copying from another Drive (for Copy/Replace LD Expansion function)"},
		},
		{
			name:     "missing item",
			dialect:  types.DialectA,
			item:     "42",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "disk data is not valid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := CheckDisk(tt.dialect, tt.item, section)
			if !resultsEqual(results, []types.Result{tt.expected}) {
				t.Errorf("Expected %v, got %v", tt.expected, results)
			}
		})
	}
}

func TestDiskStateText(t *testing.T) {
	tests := []struct {
		state types.OptionalInt
		want  string
	}{
		{types.Int(1), "On-Line Drive"},
		{types.Int(63), "Drive Absent"},
		{types.Int(200), "unknown"},
		{types.OptionalInt{}, "unknown"},
	}

	for _, tt := range tests {
		if got := DiskStateText(tt.state); got != tt.want {
			t.Errorf("DiskStateText(%s) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
