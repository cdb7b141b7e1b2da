// Package snmp wraps the gosnmp handler with the narrow surface the
// collector needs: array dialect detection and column-aligned walks of
// the Infortrend health tables.
package snmp

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
)

// Config holds the connection settings for one array.
type Config struct {
	Target         string
	Port           int
	Community      string
	Version        string
	Timeout        time.Duration
	Retries        int
	MaxOIDs        int
	MaxRepetitions int

	User UserConfig
}

// UserConfig holds the SNMPv3 credentials. Ignored for v1 and v2c.
type UserConfig struct {
	Name          string
	SecurityLevel string
	AuthProtocol  string
	AuthPassword  string
	PrivProtocol  string
	PrivPassword  string
}

// conn is the slice of gosnmp.Handler the client relies on.
type conn interface {
	Connect() error
	Close() error
	Get(oids []string) (*gosnmp.SnmpPacket, error)
	WalkAll(rootOid string) ([]gosnmp.SnmpPDU, error)
	BulkWalkAll(rootOid string) ([]gosnmp.SnmpPDU, error)
	Version() gosnmp.SnmpVersion
}

// Client is a connected SNMP session with one Infortrend array.
type Client struct {
	conn conn
}

// NewClient configures a gosnmp handler from cfg and connects it.
func NewClient(cfg Config) (*Client, error) {
	handler := gosnmp.NewHandler()
	handler.SetTarget(cfg.Target)
	handler.SetPort(uint16(cfg.Port))
	handler.SetRetries(cfg.Retries)
	handler.SetTimeout(cfg.Timeout)
	handler.SetMaxOids(cfg.MaxOIDs)
	handler.SetMaxRepetitions(uint32(cfg.MaxRepetitions))

	switch version := parseVersion(cfg.Version); version {
	case gosnmp.Version1, gosnmp.Version2c:
		handler.SetVersion(version)
		handler.SetCommunity(cfg.Community)
	case gosnmp.Version3:
		if cfg.User.Name == "" {
			return nil, errors.New("username is required for SNMPv3")
		}
		handler.SetVersion(gosnmp.Version3)
		handler.SetSecurityModel(gosnmp.UserSecurityModel)
		handler.SetMsgFlags(parseSecurityLevel(cfg.User.SecurityLevel))
		handler.SetSecurityParameters(&gosnmp.UsmSecurityParameters{
			UserName:                 cfg.User.Name,
			AuthenticationProtocol:   parseAuthProtocol(cfg.User.AuthProtocol),
			AuthenticationPassphrase: cfg.User.AuthPassword,
			PrivacyProtocol:          parsePrivProtocol(cfg.User.PrivProtocol),
			PrivacyPassphrase:        cfg.User.PrivPassword,
		})
	}

	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Target, err)
	}
	return &Client{conn: handler}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// walkAll walks one subtree, using bulk requests where the protocol
// version supports them.
func (c *Client) walkAll(rootOid string) ([]gosnmp.SnmpPDU, error) {
	if c.conn.Version() == gosnmp.Version1 {
		return c.conn.WalkAll(rootOid)
	}
	return c.conn.BulkWalkAll(rootOid)
}

func parseVersion(version string) gosnmp.SnmpVersion {
	switch version {
	case "0", "1":
		return gosnmp.Version1
	case "3":
		return gosnmp.Version3
	default:
		return gosnmp.Version2c
	}
}

func parseSecurityLevel(level string) gosnmp.SnmpV3MsgFlags {
	switch level {
	case "2", "authNoPriv":
		return gosnmp.AuthNoPriv
	case "3", "authPriv":
		return gosnmp.AuthPriv
	default:
		return gosnmp.NoAuthNoPriv
	}
}

func parseAuthProtocol(protocol string) gosnmp.SnmpV3AuthProtocol {
	switch protocol {
	case "2", "md5":
		return gosnmp.MD5
	case "3", "sha":
		return gosnmp.SHA
	case "4", "sha224":
		return gosnmp.SHA224
	case "5", "sha256":
		return gosnmp.SHA256
	case "6", "sha384":
		return gosnmp.SHA384
	case "7", "sha512":
		return gosnmp.SHA512
	default:
		return gosnmp.NoAuth
	}
}

func parsePrivProtocol(protocol string) gosnmp.SnmpV3PrivProtocol {
	switch protocol {
	case "2", "des":
		return gosnmp.DES
	case "3", "aes":
		return gosnmp.AES
	case "4", "aes192":
		return gosnmp.AES192
	case "5", "aes256":
		return gosnmp.AES256
	case "6", "aes192c":
		return gosnmp.AES192C
	case "7", "aes256c":
		return gosnmp.AES256C
	default:
		return gosnmp.NoPriv
	}
}
