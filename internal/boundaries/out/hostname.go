package out

// HostnameResolver looks up the machine name reported by the operating system.
type HostnameResolver interface {
	Hostname() (string, error)
}
