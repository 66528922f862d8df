package models

import (
	"fmt"
	"strings"
)

// Role is the closed platform role vocabulary used for RBAC.
type Role string

const (
	RoleLearner    Role = "Learner"
	RoleEmployee   Role = "Employee"
	RoleInstructor Role = "Instructor"
	RoleManager    Role = "Manager"
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
)

// AllRoles lists the platform roles in a stable order.
func AllRoles() []Role {
	return []Role{
		RoleLearner,
		RoleEmployee,
		RoleInstructor,
		RoleManager,
		RoleSuperAdmin,
		RoleAdmin,
	}
}

// ParseRole parses a role string. Matching is case-insensitive and tolerates
// "-" and " " as separators ("super_admin", "Super-Admin" both resolve to
// SuperAdmin). Unknown tokens are an error naming the offending value.
func ParseRole(value string) (Role, error) {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return "", fmt.Errorf("role string is empty")
	}

	key := strings.ReplaceAll(normalized, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "_", "")

	for _, r := range AllRoles() {
		if strings.EqualFold(string(r), key) || strings.EqualFold(string(r), normalized) {
			return r, nil
		}
	}

	return "", fmt.Errorf("unknown role: %s", value)
}

// ParseRoles parses a comma-separated role list, failing fast on the first
// unknown token. Empty tokens are skipped.
func ParseRoles(csv string) ([]Role, error) {
	if strings.TrimSpace(csv) == "" {
		return []Role{}, nil
	}

	var roles []Role
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		role, err := ParseRole(part)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if roles == nil {
		roles = []Role{}
	}
	return roles, nil
}

// Principal is the resolved identity for a request. It is built fresh per
// request and never persisted.
type Principal struct {
	Subject string  `json:"subject"`
	Roles   []Role  `json:"roles"`
	Email   *string `json:"email"`
}
