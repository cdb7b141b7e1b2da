package infortrend

import (
	"testing"

	"infortrend-exporter/pkg/types"
)

func TestParseLogicalDriveRows(t *testing.T) {
	rows := [][]string{
		{"123456", "0"},
		{"123456", "4"},
		{"789012", "130"},
		{"345678"},
	}

	parsed := ParseLogicalDriveRows(rows)

	if len(parsed) != 3 {
		t.Fatalf("Expected 3 parsed logical drives, got %d", len(parsed))
	}
	if parsed["123456"].State.Value != 0 {
		t.Errorf("Duplicate id should not override first record, got %s", parsed["123456"].State)
	}
	if parsed["789012"].State.Value != 130 {
		t.Errorf("Expected state 130, got %s", parsed["789012"].State)
	}
	if parsed["345678"].State.Valid {
		t.Errorf("Short row state should be absent, got %s", parsed["345678"].State)
	}
}

func TestCheckLogicalDrive(t *testing.T) {
	section := map[string]types.LogicalDriveRecord{
		"good":       {State: types.Int(0)},
		"rebuilding": {State: types.Int(1)},
		"init":       {State: types.Int(2)},
		"degraded":   {State: types.Int(3)},
		"dead":       {State: types.Int(4)},
		"missing":    {State: types.Int(7)},
		"offline":    {State: types.Int(130)},
		"offdeg":     {State: types.Int(131)},
		"good64":     {State: types.Int(64)},
		"offline64":  {State: types.Int(192)},
		"unmapped":   {State: types.Int(40)},
		"absent":     {State: types.OptionalInt{}},
	}

	tests := []struct {
		name     string
		dialect  types.Dialect
		item     string
		expected types.Result
	}{
		{
			name:     "good drive",
			dialect:  types.DialectA,
			item:     "good",
			expected: types.Result{Severity: types.SeverityOK, Summary: "Good"},
		},
		{
			name:     "rebuilding warns",
			dialect:  types.DialectA,
			item:     "rebuilding",
			expected: types.Result{Severity: types.SeverityWarning, Summary: "Rebuilding"},
		},
		{
			name:     "initializing warns",
			dialect:  types.DialectB,
			item:     "init",
			expected: types.Result{Severity: types.SeverityWarning, Summary: "Initializing"},
		},
		{
			name:     "degraded is critical",
			dialect:  types.DialectA,
			item:     "degraded",
			expected: types.Result{Severity: types.SeverityCritical, Summary: "Degraded"},
		},
		{
			name:     "dead is critical",
			dialect:  types.DialectB,
			item:     "dead",
			expected: types.Result{Severity: types.SeverityCritical, Summary: "Dead"},
		},
		{
			name:     "drive missing is critical",
			dialect:  types.DialectA,
			item:     "missing",
			expected: types.Result{Severity: types.SeverityCritical, Summary: "Drive Missing"},
		},
		{
			name:     "offline flag prefixes dialect A with a space",
			dialect:  types.DialectA,
			item:     "offline",
			expected: types.Result{Severity: types.SeverityWarning, Summary: "Logical Drive Off-line (RW) Initializing"},
		},
		{
			name:     "offline flag prefixes dialect B with a comma",
			dialect:  types.DialectB,
			item:     "offline",
			expected: types.Result{Severity: types.SeverityWarning, Summary: "Logical Drive Off-line (RW), Initializing"},
		},
		{
			name:     "offline degraded drive is critical",
			dialect:  types.DialectA,
			item:     "offdeg",
			expected: types.Result{Severity: types.SeverityCritical, Summary: "Logical Drive Off-line (RW) Degraded"},
		},
		{
			name:     "state 64 is good on dialect B",
			dialect:  types.DialectB,
			item:     "good64",
			expected: types.Result{Severity: types.SeverityOK, Summary: "Good"},
		},
		{
			name:     "state 64 is unmapped on dialect A",
			dialect:  types.DialectA,
			item:     "good64",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "Status is 64"},
		},
		{
			name:     "offline good drive on dialect B",
			dialect:  types.DialectB,
			item:     "offline64",
			expected: types.Result{Severity: types.SeverityOK, Summary: "Logical Drive Off-line (RW), Good"},
		},
		{
			name:     "unmapped state",
			dialect:  types.DialectB,
			item:     "unmapped",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "Status is 40"},
		},
		{
			name:     "absent state",
			dialect:  types.DialectA,
			item:     "absent",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "Status is "},
		},
		{
			name:     "missing item",
			dialect:  types.DialectA,
			item:     "nope",
			expected: types.Result{Severity: types.SeverityUnknown, Summary: "cannot parse: no logical drive data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := CheckLogicalDrive(tt.dialect, tt.item, section)
			if !resultsEqual(results, []types.Result{tt.expected}) {
				t.Errorf("Expected %v, got %v", tt.expected, results)
			}
		})
	}
}

func TestLogicalDriveStateText(t *testing.T) {
	tests := []struct {
		dialect types.Dialect
		state   types.OptionalInt
		want    string
	}{
		{types.DialectA, types.Int(0), "Good"},
		{types.DialectA, types.Int(131), "Degraded"},
		{types.DialectB, types.Int(192), "Good"},
		{types.DialectA, types.Int(64), "unknown"},
		{types.DialectB, types.Int(40), "unknown"},
		{types.DialectA, types.OptionalInt{}, "unknown"},
	}

	for _, tt := range tests {
		if got := LogicalDriveStateText(tt.dialect, tt.state); got != tt.want {
			t.Errorf("LogicalDriveStateText(%s, %s) = %q, want %q", tt.dialect, tt.state, got, tt.want)
		}
	}
}
