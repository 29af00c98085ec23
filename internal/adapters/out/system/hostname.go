// Package system implements adapters backed by the operating system.
package system

import "os"

// Hostname implements the HostnameResolver interface with os.Hostname.
type Hostname struct{}

// NewHostname creates a new hostname resolver.
func NewHostname() Hostname {
	return Hostname{}
}

// Hostname returns the kernel-reported host name.
func (Hostname) Hostname() (string, error) {
	return os.Hostname()
}
