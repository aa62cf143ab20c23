package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPort is returned when the configured port is not an integer in 1..65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidAddress is returned when the bind address is neither an IP nor a hostname.
	ErrInvalidAddress = errors.New("invalid bind address")
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	// It is kept as given so responses can echo the configured value verbatim.
	Port string `mapstructure:"port" default:"3000"`
	// BindAddress is the host or IP the listener binds to.
	BindAddress string `mapstructure:"bind_address" default:"127.0.0.1"`
}

// Validate rejects ports and addresses that cannot be bound.
func (c Config) Validate() error {
	if _, err := c.PortNumber(); err != nil {
		return err
	}
	if !IsValidHost(c.BindAddress) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, c.BindAddress)
	}
	return nil
}

// PortNumber parses Port as a TCP port.
func (c Config) PortNumber() (int, error) {
	return ParsePort(c.Port)
}

// Address returns host:port as used for logging and dialing.
func (c Config) Address() string {
	return net.JoinHostPort(c.BindAddress, c.Port)
}

// ParsePort parses a decimal TCP port in 1..65535.
func ParsePort(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, s)
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("%w: %d out of range", ErrInvalidPort, p)
	}
	return p, nil
}

// IsValidHost reports whether host is an IP literal or an RFC 1123 hostname.
func IsValidHost(host string) bool {
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	if len(host) > 253 {
		return false
	}
	for _, label := range strings.Split(strings.TrimSuffix(host, "."), ".") {
		if !isValidLabel(label) {
			return false
		}
	}
	return true
}

func isValidLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
