package models

import (
	"testing"
)

func TestNewUserValidate(t *testing.T) {
	valid := NewUser{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "supersecret",
		Country:  "ES",
	}

	testCases := []struct {
		name    string
		mutate  func(input *NewUser)
		wantErr bool
	}{
		{"valid input", func(input *NewUser) {}, false},
		{"name too short", func(input *NewUser) { input.Name = "Jo" }, true},
		{"name of only spaces", func(input *NewUser) { input.Name = "    " }, true},
		{"invalid email", func(input *NewUser) { input.Email = "not-an-email" }, true},
		{"password too short", func(input *NewUser) { input.Password = "short" }, true},
		{"country too long", func(input *NewUser) { input.Country = "ESP" }, true},
		{"country empty", func(input *NewUser) { input.Country = "" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			err := input.validate()
			if tc.wantErr && err == nil {
				t.Fatalf("validate() = nil, expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("validate() = %v, expected nil", err)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	admin := User{Role: UserRoleAdmin}
	regular := User{Role: UserRoleUser}

	if !admin.IsAdmin() {
		t.Fatalf("IsAdmin() = false for an admin user")
	}
	if regular.IsAdmin() {
		t.Fatalf("IsAdmin() = true for a regular user")
	}
}

func TestPrepareGive(t *testing.T) {
	user := User{Password: "hashed"}
	user.PrepareGive()
	if user.Password != "" {
		t.Fatalf("PrepareGive() left the password set")
	}
}
