package validator

import (
	"testing"
)

func TestValidateUserCreate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        UserCreateRequest
		wantErrors int
	}{
		{name: "valid", req: UserCreateRequest{Name: "Ada", Email: "ada@example.com"}},
		{name: "missing name", req: UserCreateRequest{Email: "ada@example.com"}, wantErrors: 1},
		{name: "bad email", req: UserCreateRequest{Name: "Ada", Email: "not-an-email"}, wantErrors: 1},
		{name: "both invalid", req: UserCreateRequest{}, wantErrors: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if len(errs) != tt.wantErrors {
				t.Errorf("Validate() = %d errors (%v), want %d", len(errs), errs, tt.wantErrors)
			}
		})
	}
}

func TestSlugRule(t *testing.T) {
	v := New()

	tests := []struct {
		slug  string
		valid bool
	}{
		{"intro", true},
		{"intro-to-go", true},
		{"a1-b2", true},
		{"", false},
		{"Intro", false},
		{"intro--to", false},
		{"-intro", false},
		{"intro-", false},
		{"intro_to_go", false},
		{"intro to go", false},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			req := ContentCreateRequest{Title: "Intro", Slug: tt.slug}
			errs := v.Validate(&req)
			if tt.valid && len(errs) != 0 {
				t.Errorf("slug %q rejected: %v", tt.slug, errs)
			}
			if !tt.valid && len(errs) == 0 {
				t.Errorf("slug %q accepted, want rejection", tt.slug)
			}
		})
	}
}

func TestValidateUpdateSkipsNilFields(t *testing.T) {
	v := New()

	if errs := v.Validate(&UserUpdateRequest{}); len(errs) != 0 {
		t.Errorf("empty update should be valid, got %v", errs)
	}

	bad := "nope"
	if errs := v.Validate(&UserUpdateRequest{Email: &bad}); len(errs) != 1 {
		t.Errorf("invalid email should fail, got %v", errs)
	}
}
