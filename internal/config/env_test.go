package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ADDR", "GIN_MODE", "DB_DSN", "AUTH_DISABLED", "JWT_SECRET",
		"ROLE_CLAIM", "ROLE_CLAIM_SHAPE", "ROLE_CLAIM_KEY", "MANAGER_ROLE",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	clearEnv(t)

	env := LoadEnv()

	if env.AppAddr != ":8080" {
		t.Fatalf("unexpected addr: %q", env.AppAddr)
	}
	if env.RoleClaim != "cognito:groups" || env.RoleClaimShape != "flat" || env.RoleClaimKey != "roles" {
		t.Fatalf("unexpected claim settings: %+v", env)
	}
	if env.ManagerRole != "laundry-manager" {
		t.Fatalf("unexpected manager role: %q", env.ManagerRole)
	}
	if env.AuthDisabled {
		t.Fatal("auth must be enabled by default")
	}
	if len(env.CORSOrigins) == 0 {
		t.Fatal("expected default CORS origins")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("AUTH_DISABLED", "TRUE")
	t.Setenv("ROLE_CLAIM", "realm_access")
	t.Setenv("ROLE_CLAIM_SHAPE", "NESTED")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	env := LoadEnv()

	if env.AppAddr != ":9090" || !env.AuthDisabled {
		t.Fatalf("unexpected env: %+v", env)
	}
	if env.RoleClaim != "realm_access" || env.RoleClaimShape != "nested" {
		t.Fatalf("unexpected claim settings: %+v", env)
	}
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[0] != "https://app.example.com" {
		t.Fatalf("unexpected origins: %v", env.CORSOrigins)
	}
}

func TestLoadEnvUnknownShapeFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROLE_CLAIM_SHAPE", "tree")

	if env := LoadEnv(); env.RoleClaimShape != "flat" {
		t.Fatalf("unknown shape must coerce to flat, got %q", env.RoleClaimShape)
	}
}
