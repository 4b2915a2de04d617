package config

import (
	"os"
	"strings"
)

// Env carries process configuration. The claim settings exist because
// identity providers disagree on where group membership lives in the
// token: Cognito emits a flat list under "cognito:groups", Keycloak
// nests a list under a "roles" key inside a map claim.
type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	AuthDisabled bool
	JWTSecret    string

	// RoleClaim is the claim name holding group membership.
	// RoleClaimShape selects the decoder: "flat" (list of strings) or
	// "nested" (map containing a list under RoleClaimKey).
	RoleClaim      string
	RoleClaimShape string
	RoleClaimKey   string

	// ManagerRole is the raw provider role required on the protected
	// resource routes (before the ROLE_ prefix is applied).
	ManagerRole string

	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/laundry?parseTime=true&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	roleClaim := strings.TrimSpace(os.Getenv("ROLE_CLAIM"))
	if roleClaim == "" {
		roleClaim = "cognito:groups"
	}

	shape := strings.ToLower(strings.TrimSpace(os.Getenv("ROLE_CLAIM_SHAPE")))
	if shape != "nested" {
		shape = "flat"
	}

	claimKey := strings.TrimSpace(os.Getenv("ROLE_CLAIM_KEY"))
	if claimKey == "" {
		claimKey = "roles"
	}

	managerRole := strings.TrimSpace(os.Getenv("MANAGER_ROLE"))
	if managerRole == "" {
		managerRole = "laundry-manager"
	}

	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:          dsn,
		AuthDisabled:   strings.EqualFold(strings.TrimSpace(os.Getenv("AUTH_DISABLED")), "true"),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		RoleClaim:      roleClaim,
		RoleClaimShape: shape,
		RoleClaimKey:   claimKey,
		ManagerRole:    managerRole,
		CORSOrigins:    origins,
	}
}
