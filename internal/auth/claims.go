package auth

import "strings"

// RolePrefix is the canonical prefix applied to every provider role so
// the gate compares one form regardless of how the issuer names roles.
const RolePrefix = "ROLE_"

// RoleSet holds the caller's canonical roles for one request.
type RoleSet map[string]struct{}

func (r RoleSet) Has(role string) bool {
	_, ok := r[role]
	return ok
}

// Claim shapes. Providers either emit the group list directly under the
// claim ("flat") or wrap it in a map under a known key ("nested").
const (
	ShapeFlat   = "flat"
	ShapeNested = "nested"
)

// RoleExtractor turns verified token claims into a RoleSet. It never
// fails: absent, empty or unrecognized claim values yield an empty set.
type RoleExtractor struct {
	Claim     string
	Shape     string
	NestedKey string
}

func (e RoleExtractor) Extract(claims map[string]any) RoleSet {
	roles := RoleSet{}
	if len(claims) == 0 {
		return roles
	}

	raw, ok := claims[e.Claim]
	if !ok || raw == nil {
		return roles
	}

	var list []any
	switch e.Shape {
	case ShapeNested:
		nested, ok := raw.(map[string]any)
		if !ok {
			return roles
		}
		list, _ = nested[e.NestedKey].([]any)
	default:
		list, _ = raw.([]any)
	}

	for _, item := range list {
		name, ok := item.(string)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		roles[RolePrefix+name] = struct{}{}
	}
	return roles
}
