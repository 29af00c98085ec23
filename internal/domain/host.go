package domain

import "time"

// HostInfo is the data rendered by the host page.
type HostInfo struct {
	Hostname    string
	RequestedAt time.Time
}

// LocalImage is an image present in the local container engine.
type LocalImage struct {
	ID      string
	Tags    []string
	Size    int64
	Created time.Time
}

// ShortID returns the first 12 hex characters of the image ID.
func (i LocalImage) ShortID() string {
	id := i.ID
	if len(id) > 7 && id[:7] == "sha256:" {
		id = id[7:]
	}
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
