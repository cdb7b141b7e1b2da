package infortrend

// chassisStatusB is the decode table for the newer firmware tree. Most
// message pairs match dialect A; the LED, cache-backup and network types
// were reworded, and the backplane, enclosure-drawer and enclosure-
// management types only exist here. Sub-field entries carry no severity
// tier in this tree.
var chassisStatusB = map[SensorType]sensorSpec{
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
				0: {Message: "Temp. within safe range"},
				2: {Message: "Cold Temp. Warning"},
				3: {Message: "Hot Temp. Warning"},
				4: {Message: "Cold Temp. Limit Exceeded"},
				5: {Message: "Hot Temp. Limit Exceeded"},
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
				0: {Message: "battery fully charged"},
				1: {Message: "battery not fully charged"},
				2: {Message: "battery charge critically low"},
				3: {Message: "battery completely drained"},
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
				0: {Message: "Voltage within acceptable range"},
				2: {Message: "Low Voltage Warning"},
				3: {Message: "High Voltage Warning"},
				4: {Message: "Low Voltage Limit Exceeded"},
				5: {Message: "High Voltage Limit Exceeded"},
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
				0: {Message: "Current within acceptable range"},
				3: {Message: "Over Current Warning"},
				5: {Message: "Over Current Limit Exceeded"},
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
				0: {Message: "battery fully charged"},
				1: {Message: "battery not fully charged"},
				2: {Message: "battery charge critically low"},
				3: {Message: "battery completely drained"},
			},
		},
	},
	SensorLED: {
		bits: []bitMessages{
			{0, "", ""},
			{6, "LED is active", "LED is inactive"},
			{7, "LED is present", "LED is NOT present"},
		},
	},
	SensorCacheBackup: {
		bits: []bitMessages{
			{0, "Flash Device functioning normally", "Flash Device malfunctioning"},
			{6, "Flash Device is enabled", "Flash Device is disabled"},
			{7, "Flash Device is present", "Flash Device is NOT present"},
		},
	},
	SensorNetworkInterface: {
		bits: []bitMessages{
			{0, "Host Board IS present", ""},
			{7, "Host Board IS present", "Host Board is NOT present"},
		},
	},
	SensorBackplane: {
		bits: []bitMessages{
			{0, "Midplane/Backplane", ""},
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
	SensorEnclosureDrawer: {
		bits: []bitMessages{
			{0, "Enclosure Drawer functioning normally", "Enclosure Drawer malfunctioning"},
			{6, "Enclosure Drawer is closed", "Enclosure Drawer is opened"},
			{7, "Enclosure Drawer is present", "Enclosure Drawer is NOT present"},
		},
	},
	SensorEnclosureMgmt: {
		bits: []bitMessages{
			{0, "Enclosure Management Services Controller functioning normally", "Enclosure Management Services Controller malfunctioning"},
			{6, "Enclosure Management Services Controller is closed", "Enclosure Management Services Controller is opened"},
			{7, "Enclosure Management Services Controller is present", "Enclosure Management Services Controller is NOT present"},
		},
	},
}
