package snmp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosnmp/gosnmp"

	"infortrend-exporter/pkg/types"
)

const (
	oidSysDescr    = ".1.3.6.1.2.1.1.1.0"
	oidSysObjectID = ".1.3.6.1.2.1.1.2.0"

	// Dialect A arrays report a sysObjectID under this prefix and answer
	// the probe OID. Dialect B arrays only advertise the vendor in
	// sysDescr.
	oidDialectAPrefix = ".1.3.6.1.4.1.1714.1.1"
	oidDialectAProbe  = ".1.3.6.1.4.1.1714.1.1.1.1.0"
)

// ErrUnsupportedDevice reports a reachable SNMP agent that does not
// expose an Infortrend MIB in either dialect.
var ErrUnsupportedDevice = errors.New("device does not expose an Infortrend MIB")

// DeviceInfo describes the array found during detection.
type DeviceInfo struct {
	Dialect     types.Dialect
	SysDescr    string
	SysObjectID string
}

// Detect reads the system group and classifies the array's MIB dialect.
// A device counts as dialect A when its sysObjectID lives under the
// Infortrend enterprise prefix or the probe OID answers; dialect B when
// sysDescr names the vendor without qualifying as A.
func (c *Client) Detect() (DeviceInfo, error) {
	var info DeviceInfo

	packet, err := c.conn.Get([]string{oidSysDescr, oidSysObjectID})
	if err != nil {
		return info, fmt.Errorf("reading snmp system group: %w", err)
	}
	for _, pdu := range packet.Variables {
		switch "." + strings.TrimPrefix(pdu.Name, ".") {
		case oidSysDescr:
			info.SysDescr = pduValue(pdu)
		case oidSysObjectID:
			if v := pduValue(pdu); v != "" {
				info.SysObjectID = "." + v
			}
		}
	}

	switch {
	case strings.HasPrefix(info.SysObjectID, oidDialectAPrefix) || c.probeDialectA():
		info.Dialect = types.DialectA
	case strings.Contains(info.SysDescr, "nfortrend"):
		info.Dialect = types.DialectB
	default:
		return info, fmt.Errorf("%w: sysDescr %q, sysObjectID %q", ErrUnsupportedDevice, info.SysDescr, info.SysObjectID)
	}
	return info, nil
}

// probeDialectA checks whether the dialect A anchor OID resolves to a
// real value. Agents answer probes for unknown OIDs with NoSuchObject or
// NoSuchInstance instead of an error.
func (c *Client) probeDialectA() bool {
	packet, err := c.conn.Get([]string{oidDialectAProbe})
	if err != nil || packet == nil {
		return false
	}
	for _, pdu := range packet.Variables {
		switch pdu.Type {
		case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.Null:
			continue
		default:
			return true
		}
	}
	return false
}
