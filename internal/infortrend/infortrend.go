// Package infortrend decodes the chassis-sensor, physical-disk, and
// logical-drive status tables that Infortrend storage arrays expose over
// SNMP. Two table dialects exist in the field (older EonStor firmware "A"
// and the newer tree "B"); all decoding is parameterized by the detected
// dialect and driven by static lookup tables, so the check functions are
// pure and safe for concurrent use.
package infortrend

import (
	"fmt"
	"sort"
)

// SensorType identifies which decode table applies to a chassis sensor.
// Values match the type column of OID .1.3.6.1.4.1.1714.1.1.9.1.
type SensorType int

const (
	SensorPowerSupply      SensorType = 1
	SensorFan              SensorType = 2
	SensorTemperature      SensorType = 3
	SensorUPS              SensorType = 4
	SensorVoltage          SensorType = 5
	SensorCurrent          SensorType = 6
	SensorDoor             SensorType = 9
	SensorSpeaker          SensorType = 10
	SensorBattery          SensorType = 11
	SensorLED              SensorType = 12
	SensorCacheBackup      SensorType = 13
	SensorNetworkInterface SensorType = 14
	SensorBackplane        SensorType = 15
	SensorSlot             SensorType = 17
	SensorEnclosureDrawer  SensorType = 18
	SensorEnclosureMgmt    SensorType = 31
)

// String returns a metric-label-safe name for the sensor type.
func (s SensorType) String() string {
	switch s {
	case SensorPowerSupply:
		return "power_supply"
	case SensorFan:
		return "fan"
	case SensorTemperature:
		return "temperature"
	case SensorUPS:
		return "ups"
	case SensorVoltage:
		return "voltage"
	case SensorCurrent:
		return "current"
	case SensorDoor:
		return "door"
	case SensorSpeaker:
		return "speaker"
	case SensorBattery:
		return "battery"
	case SensorLED:
		return "led"
	case SensorCacheBackup:
		return "cache_backup_unit"
	case SensorNetworkInterface:
		return "network_interface"
	case SensorBackplane:
		return "backplane"
	case SensorSlot:
		return "slot"
	case SensorEnclosureDrawer:
		return "enclosure_drawer"
	case SensorEnclosureMgmt:
		return "enclosure_management"
	default:
		return fmt.Sprintf("type_%d", int(s))
	}
}

// Options toggles compatibility behavior between the legacy decode quirks
// and the corrected variants. The zero value reproduces the legacy
// behavior exactly.
type Options struct {
	// AggregateChassisBits emits one result per declared status bit on
	// dialect A. In legacy mode only the last evaluated bit's result is
	// emitted, which lets an informational bit override an earlier
	// critical verdict.
	AggregateChassisBits bool

	// SkipInternalDisk drops the first dialect-B disk row, a
	// controller-internal device. The legacy parser keeps it: its skip
	// guard compared the integer row index against the string "0" and
	// never matched.
	SkipInternalDisk bool
}

// DiscoverItems lists the monitorable item keys of a parsed section in a
// stable order. Empty keys stay in the section but are never discovered.
func DiscoverItems[V any](section map[string]V) []string {
	items := make([]string, 0, len(section))
	for key := range section {
		if key == "" {
			continue
		}
		items = append(items, key)
	}
	sort.Strings(items)
	return items
}

// field reads one column of a raw SNMP row. Short rows are tolerated: a
// missing trailing column reads as absent, never as an index panic.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
