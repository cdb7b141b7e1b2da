package infortrend

import "infortrend-exporter/pkg/types"

// chassisStatusA is the decode table for the older EonStor firmware tree.
// Messages are kept exactly as the controller documentation words them.
// Types 15, 18 and 31 only exist in the newer tree and are deliberately
// absent here.
var chassisStatusA = map[SensorType]sensorSpec{
	SensorPowerSupply: {
		bits: []bitMessages{
			{0, "Power supply functioning normally", "Power supply malfunctioning"},
			{6, "Power supply is ON", "Power supply is OFF"},
			{7, "Power supply IS present", "Power supply is NOT present"},
		},
	},
	SensorFan: {
		bits: []bitMessages{
			{0, "Fan functioning normally", "Fan malfunctioning"},
			{6, "Fan is ON", "Fan is OFF"},
			{7, "Fan IS present", "Fan is NOT present"},
		},
	},
	SensorTemperature: {
		bits: []bitMessages{
			{0, "Temp. sensor functioning normally", "Temp. sensor malfunctioning"},
			{6, "Temp. Sensor is Activated", "Temp. Sensor is NOT Activated"},
			{7, "Temperature sensor IS present", "Temperature sensor is NOT present"},
		},
		extra: &extraSpec{
			shift: 1,
			mask:  7,
			entries: map[int]ExtraInfo{
				0: {types.SeverityOK, "Temp. within safe range"},
				2: {types.SeverityWarning, "Cold Temp. Warning"},
				3: {types.SeverityWarning, "Hot Temp. Warning"},
				4: {types.SeverityCritical, "Cold Temp. Limit Exceeded"},
				5: {types.SeverityCritical, "Hot Temp. Limit Exceeded"},
			},
		},
	},
	SensorUPS: {
		bits: []bitMessages{
			{0, "Unit functioning normally", "Unit malfunctioning"},
			{1, "AC Power present", "AC Power NOT present"},
			{6, "UPS is ON", "UPS is OFF"},
			{7, "UPS IS present", "UPS is NOT present"},
		},
		extra: &extraSpec{
			shift: 2,
			mask:  3,
			entries: map[int]ExtraInfo{
				0: {types.SeverityOK, "battery fully charged"},
				1: {types.SeverityWarning, "battery not fully charged"},
				2: {types.SeverityCritical, "battery charge critically low"},
				3: {types.SeverityCritical, "battery completely drained"},
			},
		},
	},
	SensorVoltage: {
		bits: []bitMessages{
			{0, "Voltage sensor functioning normally", "Voltage sensor malfunctioning"},
			{6, "Voltage Sensor is Activated", "Voltage Sensor is NOT Activated"},
			{7, "Voltage sensor IS present", "Voltage sensor is NOT present"},
		},
		extra: &extraSpec{
			shift: 1,
			mask:  7,
			entries: map[int]ExtraInfo{
				0: {types.SeverityOK, "Voltage within acceptable range"},
				2: {types.SeverityWarning, "Low Voltage Warning"},
				3: {types.SeverityWarning, "High Voltage Warning"},
				4: {types.SeverityCritical, "Low Voltage Limit Exceeded"},
				5: {types.SeverityCritical, "High Voltage Limit Exceeded"},
			},
		},
	},
	SensorCurrent: {
		bits: []bitMessages{
			{0, "Current sensor functioning normally", "Current sensor malfunctioning"},
			{6, "Current Sensor is Activated", "Current Sensor is NOT Activated"},
			{7, "Current sensor IS present", "Current sensor is NOT present"},
		},
		extra: &extraSpec{
			shift: 1,
			mask:  7,
			entries: map[int]ExtraInfo{
				0: {types.SeverityOK, "Current within acceptable range"},
				3: {types.SeverityWarning, "Over Current Warning"},
				5: {types.SeverityCritical, "Over Current Limit Exceeded"},
			},
		},
	},
	SensorDoor: {
		bits: []bitMessages{
			{0, "Door OK", "Door, door lock, or door sensor malfunctioning"},
			{1, "Door is shut", "Door is open"},
			{6, "Door lock engaged", "Door lock NOT engaged"},
			{7, "Door IS present", "Door is NOT present"},
		},
	},
	SensorSpeaker: {
		bits: []bitMessages{
			{0, "Speaker functioning normally", "Speaker malfunctioning"},
			{6, "Speaker is ON", "Speaker is OFF"},
			{7, "Speaker IS present", "Speaker is NOT present"},
		},
	},
	SensorBattery: {
		bits: []bitMessages{
			{0, "Battery functioning normally", "Battery malfunctioning"},
			{1, "Battery charging OFF (or trickle)", "Battery charging ON"},
			{6, "Battery-backup is enabled", "Battery-backup is disabled"},
			{7, "Battery IS present", "Battery is NOT present"},
		},
		extra: &extraSpec{
			shift: 2,
			mask:  3,
			entries: map[int]ExtraInfo{
				0: {types.SeverityOK, "battery fully charged"},
				1: {types.SeverityWarning, "battery not fully charged"},
				2: {types.SeverityCritical, "battery charge critically low"},
				3: {types.SeverityCritical, "battery completely drained"},
			},
		},
	},
	SensorLED: {
		bits: []bitMessages{
			{0, "LED functioning normally", "LED malfunctioning"},
			{6, "LED is ON", "LED is OFF"},
			{7, "LED IS present", "LED is NOT present"},
		},
	},
	SensorCacheBackup: {
		bits: []bitMessages{
			{0, "Cache Backup Module functioning normally", "Cache Backup Module malfunctioning"},
			{6, "Cache Backup Module is ON", "Cache Backup Module is OFF"},
			{7, "Cache Backup Module IS present", "Cache Backup Module is NOT present"},
		},
	},
	SensorNetworkInterface: {
		bits: []bitMessages{
			{0, "interface functioning normally", "interface malfunctioning"},
			{6, "interface is up", "interface is down"},
			{7, "interface IS present", "interface is NOT present"},
		},
	},
	SensorSlot: {
		bits: []bitMessages{
			{0, "Slot sense circuitry functioning normally", "Slot sense circuitry malfunctioning"},
			{1, `Device in slot has not been marked "needing replacement" or a replacement drive has been inserted`, "Device in slot has been marked BAD and is awaiting replacement"},
			{2, "Slot is activated so that drive can be accessed", "Slot NOT activated"},
			{6, "Slot is NOT ready for insertion/removal", "Slot is ready for insertion/removal"},
			{7, "Device inserted in slot", "Slot is empty"},
		},
	},
}
