// Package tenant maps an authenticated identity to the namespace that holds
// its data. Every user gets an isolated database whose name is derived from
// a stable identifier on the identity.
package tenant

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var ErrNoTenant = errors.New("no tenant in context")

// Identity describes the authenticated caller as reported by the identity
// provider.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Identifier returns the stable per-user identifier: the email local part
// when available, otherwise the display name with whitespace collapsed,
// otherwise the provider subject.
func (id Identity) Identifier() string {
	if id.Email != "" {
		local, _, _ := strings.Cut(id.Email, "@")
		return local
	}

	if id.Name != "" {
		return strings.Join(strings.Fields(id.Name), "_")
	}

	return id.Subject
}

var invalidDBNameChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// DBName derives the tenant database name from an identifier and the
// deployment environment. Dots are dropped outright; any other character
// that is not legal in a database name becomes an underscore.
func DBName(identifier, env string) (string, error) {
	if identifier == "" {
		return "", errors.New("identifier is required to derive a database name")
	}

	clean := strings.ReplaceAll(identifier, ".", "")
	clean = invalidDBNameChars.ReplaceAllString(clean, "_")

	return "khata_" + clean + "_" + env, nil
}

type ctxKey struct{}

// NewContext returns a context carrying the tenant identity.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the tenant identity set by the auth middleware.
func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok {
		return Identity{}, ErrNoTenant
	}

	return id, nil
}
