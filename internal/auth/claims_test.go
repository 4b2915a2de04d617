package auth

import "testing"

func TestExtractNoRoleClaim(t *testing.T) {
	e := RoleExtractor{Claim: "cognito:groups", Shape: ShapeFlat}

	cases := map[string]map[string]any{
		"nil claims":  nil,
		"absent key":  {"sub": "user-1"},
		"null value":  {"cognito:groups": nil},
		"empty list":  {"cognito:groups": []any{}},
		"wrong shape": {"cognito:groups": "laundry-manager"},
		"non strings": {"cognito:groups": []any{42, true}},
	}

	for name, claims := range cases {
		if got := e.Extract(claims); len(got) != 0 {
			t.Fatalf("%s: expected empty role set, got %v", name, got)
		}
	}
}

func TestExtractFlatList(t *testing.T) {
	e := RoleExtractor{Claim: "cognito:groups", Shape: ShapeFlat}

	roles := e.Extract(map[string]any{
		"cognito:groups": []any{"laundry-manager"},
	})

	if len(roles) != 1 {
		t.Fatalf("expected exactly one role, got %v", roles)
	}
	if !roles.Has("ROLE_laundry-manager") {
		t.Fatalf("expected canonical prefixed role, got %v", roles)
	}
}

func TestExtractNestedUnderKey(t *testing.T) {
	e := RoleExtractor{Claim: "realm_access", Shape: ShapeNested, NestedKey: "roles"}

	roles := e.Extract(map[string]any{
		"realm_access": map[string]any{
			"roles": []any{"laundry-manager", "auditor"},
		},
	})

	if len(roles) != 2 {
		t.Fatalf("expected two roles, got %v", roles)
	}
	if !roles.Has("ROLE_laundry-manager") || !roles.Has("ROLE_auditor") {
		t.Fatalf("missing canonical roles: %v", roles)
	}
}

func TestExtractNestedWrongShape(t *testing.T) {
	e := RoleExtractor{Claim: "realm_access", Shape: ShapeNested, NestedKey: "roles"}

	roles := e.Extract(map[string]any{
		"realm_access": []any{"laundry-manager"},
	})
	if len(roles) != 0 {
		t.Fatalf("expected empty role set for mismatched shape, got %v", roles)
	}
}

func TestExtractSkipsBlankNames(t *testing.T) {
	e := RoleExtractor{Claim: "cognito:groups", Shape: ShapeFlat}

	roles := e.Extract(map[string]any{
		"cognito:groups": []any{"  ", "laundry-manager"},
	})
	if len(roles) != 1 || !roles.Has("ROLE_laundry-manager") {
		t.Fatalf("blank entries should be dropped, got %v", roles)
	}
}
