package snmp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gosnmp/gosnmp"

	"infortrend-exporter/pkg/types"
)

// oidTable names the base OID of one health table and the columns to
// fetch, in the order the parsers expect them.
type oidTable struct {
	base    string
	columns []int
}

var (
	// name, status, type, value, unit, id
	chassisTableA = oidTable{base: ".1.3.6.1.4.1.1714.1.1.9.1", columns: []int{8, 13, 6, 9, 10, 12}}
	// name, status, type, value, unit
	chassisTableB = oidTable{base: ".1.3.6.1.4.1.1714.1.1.9.1", columns: []int{8, 13, 6, 9, 10}}
	// slot, status, model, version, serial, size, blocksize
	diskTableA = oidTable{base: ".1.3.6.1.4.1.1714.1.6.1", columns: []int{13, 11, 15, 16, 17, 7, 8}}
	// slot, status
	diskTableB = oidTable{base: ".1.3.6.1.4.1.1714.1.1.6.1", columns: []int{13, 11}}
	// slot, state
	logicalDriveTableA = oidTable{base: ".1.3.6.1.4.1.1714.1.2.1", columns: []int{2, 6}}
	// slot, state
	logicalDriveTableB = oidTable{base: ".1.3.6.1.4.1.1714.1.1.2.1", columns: []int{2, 6}}
)

// FetchChassis walks the chassis sensor table of the given dialect.
func (c *Client) FetchChassis(dialect types.Dialect) ([][]string, error) {
	if dialect == types.DialectB {
		return c.fetchTable(chassisTableB)
	}
	return c.fetchTable(chassisTableA)
}

// FetchDisks walks the physical disk table of the given dialect.
func (c *Client) FetchDisks(dialect types.Dialect) ([][]string, error) {
	if dialect == types.DialectB {
		return c.fetchTable(diskTableB)
	}
	return c.fetchTable(diskTableA)
}

// FetchLogicalDrives walks the logical drive table of the given dialect.
func (c *Client) FetchLogicalDrives(dialect types.Dialect) ([][]string, error) {
	if dialect == types.DialectB {
		return c.fetchTable(logicalDriveTableB)
	}
	return c.fetchTable(logicalDriveTableA)
}

// fetchTable walks each requested column and aligns the values into rows
// by their OID row index. Cells a column never reported stay empty, so
// short agent answers degrade to absent fields instead of shifting the
// row. Rows come back in ascending index order.
func (c *Client) fetchTable(table oidTable) ([][]string, error) {
	rows := make(map[string][]string)
	for i, column := range table.columns {
		columnOid := fmt.Sprintf("%s.%d", table.base, column)
		pdus, err := c.walkAll(columnOid)
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", columnOid, err)
		}
		prefix := strings.TrimPrefix(columnOid, ".") + "."
		for _, pdu := range pdus {
			name := strings.TrimPrefix(pdu.Name, ".")
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			index := strings.TrimPrefix(name, prefix)
			row, ok := rows[index]
			if !ok {
				row = make([]string, len(table.columns))
				rows[index] = row
			}
			row[i] = pduValue(pdu)
		}
	}

	indexes := make([]string, 0, len(rows))
	for index := range rows {
		indexes = append(indexes, index)
	}
	sort.Slice(indexes, func(i, j int) bool {
		return compareIndexes(indexes[i], indexes[j]) < 0
	})

	result := make([][]string, 0, len(indexes))
	for _, index := range indexes {
		result = append(result, rows[index])
	}
	return result, nil
}

// compareIndexes orders OID row indexes numerically per component, so
// "10.2" sorts after "9.1" instead of between "1.x" and "2.x".
func compareIndexes(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if cmp := strings.Compare(as[i], bs[i]); cmp != 0 {
				return cmp
			}
			continue
		}
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	}
	return len(as) - len(bs)
}

// pduValue renders one PDU as the string form the parsers work on.
// Types that carry no usable value, NoSuchInstance included, come back
// empty and read as absent downstream.
func pduValue(pdu gosnmp.SnmpPDU) string {
	switch pdu.Type {
	case gosnmp.OctetString:
		bs, ok := pdu.Value.([]byte)
		if !ok {
			return ""
		}
		return strings.ToValidUTF8(string(bs), "�")
	case gosnmp.Counter32, gosnmp.Counter64, gosnmp.Integer, gosnmp.Gauge32, gosnmp.Uinteger32, gosnmp.TimeTicks:
		return gosnmp.ToBigInt(pdu.Value).String()
	case gosnmp.ObjectIdentifier:
		v, ok := pdu.Value.(string)
		if !ok {
			return ""
		}
		return strings.TrimPrefix(v, ".")
	default:
		return ""
	}
}
