package out

import "context"

// RegistryPasswordProvider returns a short-lived password for a container registry.
type RegistryPasswordProvider interface {
	Password(ctx context.Context) (string, error)
}
