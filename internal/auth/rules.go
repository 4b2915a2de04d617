package auth

import (
	"strings"

	"laundry/internal/domain"
)

// DeniedMessage is the only text a rejected caller ever sees. Full
// context goes to the operator log instead.
const DeniedMessage = "Authorization failed"

type protectedRule struct {
	prefix string
	role   string
}

// RuleTable is built once at startup and read concurrently afterwards.
// Routes fall into three buckets: public (no token needed), protected
// (specific role required), and everything else (any valid token).
type RuleTable struct {
	public    []string
	protected []protectedRule
}

// NewRuleTable wires the fixed route policy: the landing endpoints stay
// open, the resource routes require the manager role. requiredRole is
// the raw provider role; the canonical prefix is applied here.
func NewRuleTable(requiredRole string) *RuleTable {
	role := RolePrefix + requiredRole
	return &RuleTable{
		public: []string{"/", "/home", "/farewell", "/healthz", "/metrics"},
		protected: []protectedRule{
			{prefix: "/machines", role: role},
			{prefix: "/condominiums", role: role},
		},
	}
}

// IsPublic reports whether the path bypasses authentication entirely.
func (t *RuleTable) IsPublic(path string) bool {
	for _, p := range t.public {
		if path == p {
			return true
		}
	}
	return false
}

// Authorize decides whether an authenticated caller may reach path.
// Callers with no matching protected rule are allowed: authentication
// alone satisfies the default policy.
func (t *RuleTable) Authorize(roles RoleSet, path string) error {
	for _, rule := range t.protected {
		if path != rule.prefix && !strings.HasPrefix(path, rule.prefix+"/") {
			continue
		}
		if roles.Has(rule.role) {
			return nil
		}
		return domain.ForbiddenError{Msg: DeniedMessage}
	}
	return nil
}
