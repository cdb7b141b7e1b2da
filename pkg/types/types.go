package types

import "strconv"

// Severity represents the health severity of a checked item
type Severity int

const (
	SeverityUnknown  Severity = 0
	SeverityOK       Severity = 1
	SeverityWarning  Severity = 2
	SeverityCritical Severity = 3
)

// String returns the monitoring-facing name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// rank orders severities for aggregation: a real problem outranks an
// unknown, and unknown outranks OK.
func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityUnknown:
		return 1
	default:
		return 0
	}
}

// Worse returns the more severe of the two severities.
func (s Severity) Worse(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// WorstSeverity aggregates a set of severities into the one that should
// drive the item's overall status. An empty set is OK.
func WorstSeverity(severities ...Severity) Severity {
	worst := SeverityOK
	for _, s := range severities {
		worst = worst.Worse(s)
	}
	return worst
}

// OptionalInt is the result of a lenient integer conversion. SNMP delivers
// every field as a string; a field that does not parse is "absent", which
// downstream decoding treats as "cannot decode", never as zero.
type OptionalInt struct {
	Value int
	Valid bool
}

// Int wraps a known integer value.
func Int(v int) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

// String renders the value, or an empty string when absent.
func (o OptionalInt) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.Itoa(o.Value)
}

// Dialect selects between the two Infortrend SNMP protocol generations.
// Older EonStor firmware ("A") and the newer tree ("B") expose different
// OID layouts and slightly different status semantics.
type Dialect int

const (
	DialectA Dialect = iota
	DialectB
)

// String returns the short dialect name.
func (d Dialect) String() string {
	if d == DialectB {
		return "B"
	}
	return "A"
}

// Result is one (severity, text) verdict for a checked item.
type Result struct {
	Severity Severity
	Summary  string
}

// Metric is a named numeric sample extracted from a sensor.
type Metric struct {
	Name  string
	Value float64
}

// SensorRecord holds the raw per-sensor fields of one chassis table row.
// Records are built once during parsing and never mutated.
type SensorRecord struct {
	Status   OptionalInt
	Type     OptionalInt
	RawValue OptionalInt
	RawUnit  string
}

// DiskRecord holds the raw per-slot fields of one physical-disk table row.
type DiskRecord struct {
	Slot        string
	State       OptionalInt
	Description string
}

// LogicalDriveRecord holds the state of one logical-drive table row.
type LogicalDriveRecord struct {
	State OptionalInt
}
