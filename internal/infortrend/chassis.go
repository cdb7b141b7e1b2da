package infortrend

import (
	"fmt"
	"regexp"

	"infortrend-exporter/internal/utils"
	"infortrend-exporter/pkg/types"
)

// bitMessages holds the message pair for one declared bit of a sensor
// status word: the text reported while the bit is clear and while it is
// set.
type bitMessages struct {
	bit   uint
	clear string
	set   string
}

// sensorSpec describes how one sensor type's status word is interpreted:
// the declared bits in evaluation order, plus an optional sub-field decode
// extracted by shift and mask.
type sensorSpec struct {
	bits  []bitMessages
	extra *extraSpec
}

// extraSpec decodes a multi-bit sub-field of the status word, such as the
// temperature range tier or the battery charge level.
type extraSpec struct {
	shift   uint
	mask    int
	entries map[int]ExtraInfo
}

// ExtraInfo is the decoded additional-info sub-field of a sensor status.
// Dialect B tables define no severity tier, so their entries carry the
// message only and Severity stays SeverityUnknown.
type ExtraInfo struct {
	Severity types.Severity
	Message  string
}

var sensorIDPattern = regexp.MustCompile(`\((\d+)\)`)

// SensorName builds the stable item identity of a dialect-A chassis
// sensor. A positive numeric sensor id is prepended to the raw name;
// otherwise any parenthesized index inside the name is rewritten
// ("Fan(1)" becomes "Fan 1") because parentheses break downstream
// graphing tools.
func SensorName(name, sensorID string) string {
	if id := utils.ParseOptionalInt(sensorID); id.Valid && id.Value > 0 {
		return fmt.Sprintf("ID %s %s", sensorID, name)
	}
	return sensorIDPattern.ReplaceAllString(name, " $1")
}

// ParseChassisRows converts raw chassis table rows into per-sensor records
// keyed by item identity. The first row to claim a key wins; later
// duplicates are dropped. Dialect A rows carry a sensor id column that
// feeds the key, dialect B rows are keyed by the raw name.
func ParseChassisRows(dialect types.Dialect, rows [][]string) map[string]types.SensorRecord {
	parsed := make(map[string]types.SensorRecord, len(rows))
	for _, row := range rows {
		key := field(row, 0)
		if dialect == types.DialectA {
			key = SensorName(field(row, 0), field(row, 5))
		}
		if _, seen := parsed[key]; seen {
			continue
		}
		parsed[key] = types.SensorRecord{
			Status:   utils.ParseOptionalInt(field(row, 1)),
			Type:     utils.ParseOptionalInt(field(row, 2)),
			RawValue: utils.ParseOptionalInt(field(row, 3)),
			RawUnit:  field(row, 4),
		}
	}
	return parsed
}

// CheckChassis runs the status check for one discovered chassis sensor:
// the decoded status results plus any physical measurement the sensor
// type reports.
func CheckChassis(dialect types.Dialect, item string, section map[string]types.SensorRecord, opts Options) ([]types.Result, []types.Metric) {
	rec, ok := section[item]
	if !ok {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  "cannot parse: no sensor data",
		}}, nil
	}
	var metrics []types.Metric
	if m, ok := ExtractMetric(rec.Type, rec.RawValue); ok {
		metrics = append(metrics, m)
	}
	return DecodeChassisStatus(dialect, rec.Type, rec.Status, opts), metrics
}

// DecodeChassisStatus interprets a sensor status word against the decode
// table of the given dialect. Unknown sensor types and absent status
// values yield a single UNKNOWN result; no input can make it panic.
func DecodeChassisStatus(dialect types.Dialect, sensorType, status types.OptionalInt, opts Options) []types.Result {
	spec, ok := lookupSensorSpec(dialect, sensorType)
	if !ok {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  fmt.Sprintf("Unknown sensor type %s", sensorType),
		}}
	}
	if !status.Valid {
		return []types.Result{{
			Severity: types.SeverityUnknown,
			Summary:  fmt.Sprintf("Status is %s", status),
		}}
	}
	if dialect == types.DialectB {
		return decodeChassisB(SensorType(sensorType.Value), spec, status.Value)
	}
	return decodeChassisA(spec, status.Value, opts)
}

// decodeChassisA evaluates a dialect-A status word. Bits 0-5 flag faults,
// bits 6-7 are informational. Legacy mode keeps only the result of the
// last declared bit; aggregate mode emits one result per bit so a fault
// can no longer be shadowed.
func decodeChassisA(spec sensorSpec, status int, opts Options) []types.Result {
	if status == 0 {
		return []types.Result{{Severity: types.SeverityOK, Summary: firstClear(spec)}}
	}
	var results []types.Result
	var last types.Result
	for _, b := range spec.bits {
		set := status>>b.bit&1 == 1
		switch {
		case set && b.bit < 6:
			last = types.Result{Severity: types.SeverityCritical, Summary: b.set}
		case set:
			last = types.Result{Severity: types.SeverityOK, Summary: b.set}
		default:
			last = types.Result{Severity: types.SeverityOK, Summary: b.clear}
		}
		if opts.AggregateChassisBits {
			results = append(results, last)
		}
	}
	if opts.AggregateChassisBits {
		return results
	}
	return []types.Result{last}
}

// decodeChassisB evaluates a dialect-B status word, one result per
// declared bit. A set bit is critical and its message is flagged with
// " (!)". Status 255 means the controller cannot read the sensor, and
// status 64 marks a unit held in a service state: every per-bit message
// is then prefixed with the raw status, except for LEDs where 64 is a
// normal resting state.
func decodeChassisB(sensorType SensorType, spec sensorSpec, status int) []types.Result {
	if status == 0 {
		return []types.Result{{Severity: types.SeverityOK, Summary: firstClear(spec)}}
	}
	if status == 255 {
		return []types.Result{{Severity: types.SeverityUnknown, Summary: "Status unknown"}}
	}
	results := make([]types.Result, 0, len(spec.bits))
	for _, b := range spec.bits {
		var res types.Result
		if status>>b.bit&1 == 1 {
			res = types.Result{Severity: types.SeverityCritical, Summary: b.set + " (!)"}
		} else {
			res = types.Result{Severity: types.SeverityOK, Summary: b.clear}
		}
		if status == 64 {
			if sensorType == SensorLED {
				res = types.Result{Severity: types.SeverityOK, Summary: res.Summary + ", "}
			} else {
				res = types.Result{Severity: types.SeverityCritical, Summary: fmt.Sprintf("%d %s", status, res.Summary)}
			}
		}
		results = append(results, res)
	}
	return results
}

// AdditionalInfo decodes the extra sub-field of a sensor status word, if
// the sensor type defines one. The second return reports whether a
// defined sub-field value was found.
func AdditionalInfo(dialect types.Dialect, sensorType, status types.OptionalInt) (ExtraInfo, bool) {
	if !status.Valid {
		return ExtraInfo{}, false
	}
	spec, ok := lookupSensorSpec(dialect, sensorType)
	if !ok || spec.extra == nil {
		return ExtraInfo{}, false
	}
	sub := status.Value >> spec.extra.shift & spec.extra.mask
	info, ok := spec.extra.entries[sub]
	return info, ok
}

// Metric names produced by ExtractMetric.
const (
	MetricTemperature = "temp"
	MetricVoltage     = "voltage"
)

// metricSpec pairs a metric name with the divisor that scales the raw
// integer reading into its physical unit.
type metricSpec struct {
	name    string
	divisor float64
}

// Temperatures are reported in tenths of a degree Celsius, voltages in
// millivolts. Other sensor types carry no usable measurement.
var sensorMetrics = map[SensorType]metricSpec{
	SensorTemperature: {name: MetricTemperature, divisor: 10},
	SensorVoltage:     {name: MetricVoltage, divisor: 1000},
}

// ExtractMetric scales the raw measurement of a sensor that reports one.
// Sensor types outside the metric table and absent raw values yield no
// metric.
func ExtractMetric(sensorType, raw types.OptionalInt) (types.Metric, bool) {
	if !sensorType.Valid || !raw.Valid {
		return types.Metric{}, false
	}
	spec, ok := sensorMetrics[SensorType(sensorType.Value)]
	if !ok {
		return types.Metric{}, false
	}
	return types.Metric{Name: spec.name, Value: float64(raw.Value) / spec.divisor}, true
}

func lookupSensorSpec(dialect types.Dialect, sensorType types.OptionalInt) (sensorSpec, bool) {
	if !sensorType.Valid {
		return sensorSpec{}, false
	}
	table := chassisStatusA
	if dialect == types.DialectB {
		table = chassisStatusB
	}
	spec, ok := table[SensorType(sensorType.Value)]
	return spec, ok
}

func firstClear(spec sensorSpec) string {
	if len(spec.bits) == 0 {
		return ""
	}
	return spec.bits[0].clear
}
