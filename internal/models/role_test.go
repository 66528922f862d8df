package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "exact", input: "Learner", want: RoleLearner},
		{name: "lowercase", input: "admin", want: RoleAdmin},
		{name: "uppercase", input: "INSTRUCTOR", want: RoleInstructor},
		{name: "underscore separator", input: "super_admin", want: RoleSuperAdmin},
		{name: "hyphen separator", input: "Super-Admin", want: RoleSuperAdmin},
		{name: "space separator", input: "super admin", want: RoleSuperAdmin},
		{name: "surrounding whitespace", input: "  Manager  ", want: RoleManager},
		{name: "unknown", input: "wizard", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseRole(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRoleErrorNamesToken(t *testing.T) {
	_, err := ParseRole("wizard")
	if err == nil || !strings.Contains(err.Error(), "wizard") {
		t.Errorf("error should name the offending token, got %v", err)
	}
}

func TestParseRoles(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Role
		wantErr bool
	}{
		{name: "empty", input: "", want: []Role{}},
		{name: "single", input: "Learner", want: []Role{RoleLearner}},
		{name: "csv", input: "learner,admin", want: []Role{RoleLearner, RoleAdmin}},
		{name: "csv with spaces", input: " instructor , manager ", want: []Role{RoleInstructor, RoleManager}},
		{name: "skips empty tokens", input: "learner,,admin,", want: []Role{RoleLearner, RoleAdmin}},
		{name: "fails fast on unknown", input: "learner,wizard,admin", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoles(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRoles(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRoles(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
