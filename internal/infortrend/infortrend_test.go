package infortrend

import (
	"reflect"
	"testing"

	"infortrend-exporter/pkg/types"
)

func TestSensorTypeString(t *testing.T) {
	tests := []struct {
		sensorType SensorType
		expected   string
	}{
		{SensorPowerSupply, "power_supply"},
		{SensorFan, "fan"},
		{SensorTemperature, "temperature"},
		{SensorUPS, "ups"},
		{SensorVoltage, "voltage"},
		{SensorCurrent, "current"},
		{SensorDoor, "door"},
		{SensorSpeaker, "speaker"},
		{SensorBattery, "battery"},
		{SensorLED, "led"},
		{SensorCacheBackup, "cache_backup_unit"},
		{SensorNetworkInterface, "network_interface"},
		{SensorBackplane, "backplane"},
		{SensorSlot, "slot"},
		{SensorEnclosureDrawer, "enclosure_drawer"},
		{SensorEnclosureMgmt, "enclosure_management"},
		{SensorType(99), "type_99"},
	}

	for _, tt := range tests {
		if result := tt.sensorType.String(); result != tt.expected {
			t.Errorf("SensorType(%d).String() = %q, expected %q", tt.sensorType, result, tt.expected)
		}
	}
}

func TestDiscoverItems(t *testing.T) {
	section := map[string]types.SensorRecord{
		"ID 2 Temperature": {},
		"Fan 1":            {},
		"":                 {},
		"Battery":          {},
	}

	items := DiscoverItems(section)

	expected := []string{"Battery", "Fan 1", "ID 2 Temperature"}
	if len(items) != len(expected) {
		t.Fatalf("Expected %d items, got %d: %v", len(expected), len(items), items)
	}
	for i := range expected {
		if items[i] != expected[i] {
			t.Errorf("Expected item %d to be %q, got %q", i, expected[i], items[i])
		}
	}

	if got := DiscoverItems(map[string]types.DiskRecord{}); len(got) != 0 {
		t.Errorf("Empty section should discover nothing, got %v", got)
	}
}

func TestParseRowsDeterministic(t *testing.T) {
	chassisRows := [][]string{
		{"PSU A", "0", "1", "", "", "1"},
		{"Temperature Sensor", "6", "3", "385", "(C)", "0"},
		{"PSU A", "128", "1", "", "", "1"},
	}
	diskRows := [][]string{
		{"1", "1", "ST3000DM001", "CC24", "Z1F12345", "5859375", "9"},
		{"1", "255", "", "", "", "", ""},
	}
	driveRows := [][]string{
		{"0", "0"},
		{"1", "130"},
		{"0", "131"},
	}

	for range [3]struct{}{} {
		if got := ParseChassisRows(types.DialectA, chassisRows); !reflect.DeepEqual(got, ParseChassisRows(types.DialectA, chassisRows)) {
			t.Errorf("ParseChassisRows is not deterministic, got %v", got)
		}
		if got := ParseDiskRows(types.DialectA, diskRows, Options{}); !reflect.DeepEqual(got, ParseDiskRows(types.DialectA, diskRows, Options{})) {
			t.Errorf("ParseDiskRows is not deterministic, got %v", got)
		}
		if got := ParseLogicalDriveRows(driveRows); !reflect.DeepEqual(got, ParseLogicalDriveRows(driveRows)) {
			t.Errorf("ParseLogicalDriveRows is not deterministic, got %v", got)
		}
	}

	chassis := ParseChassisRows(types.DialectA, chassisRows)
	if rec, ok := chassis["ID 1 PSU A"]; !ok || !rec.Status.Valid || rec.Status.Value != 0 {
		t.Errorf("Duplicate keys should keep the first row, got %+v", rec)
	}
	disks := ParseDiskRows(types.DialectA, diskRows, Options{})
	if rec, ok := disks["1"]; !ok || !rec.State.Valid || rec.State.Value != 1 {
		t.Errorf("Duplicate slots should keep the first row, got %+v", rec)
	}
	drives := ParseLogicalDriveRows(driveRows)
	if rec, ok := drives["0"]; !ok || !rec.State.Valid || rec.State.Value != 0 {
		t.Errorf("Duplicate drive ids should keep the first row, got %+v", rec)
	}
}
