package user

import (
	"sort"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/livante/growthlab/core"
)

func TestValidatePassword(t *testing.T) {
	// plant a common password that also passes the complexity check
	commonPasswords = append(commonPasswords, "c0mmon!pwd")
	sort.Strings(commonPasswords)

	tests := []struct {
		name    string
		nu      NewUser
		wantTag string // empty means valid
	}{
		{
			name:    "too short",
			nu:      newUserWithPwd("Ab1!x"),
			wantTag: pwdMinLenTag,
		},
		{
			name:    "whitespace",
			nu:      newUserWithPwd("Ab1! abcd"),
			wantTag: pwdNoSpaceTag,
		},
		{
			name:    "all numeric",
			nu:      newUserWithPwd("12345678"),
			wantTag: pwdNotAllNumTag,
		},
		{
			name:    "missing special char",
			nu:      newUserWithPwd("Abcd1234"),
			wantTag: pwdComplexityTag,
		},
		{
			name:    "missing uppercase",
			nu:      newUserWithPwd("abcd123!"),
			wantTag: pwdComplexityTag,
		},
		{
			name: "similar to email",
			nu: NewUser{
				Name:            "Sam",
				Email:           "sam.riley@test.test",
				Password:        "Sam.riley@test1",
				PasswordConfirm: "Sam.riley@test1",
			},
			wantTag: pwdAttrSimTag,
		},
		{
			name:    "common password",
			nu:      newUserWithPwd("C0mmon!pwd"),
			wantTag: pwdNoCommonTag,
		},
		{
			name: "valid",
			nu:   newUserWithPwd("G00d&pr0per"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.Validate.Struct(tt.nu)
			if tt.wantTag == "" {
				if err != nil {
					t.Errorf("Struct() failed: %v", err)
				}
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("Struct() error = %v (%T); want ValidationErrors", err, err)
			}
			for _, fe := range vErrs {
				if fe.Tag() == tt.wantTag {
					return
				}
			}
			t.Errorf("Struct() errors = %v; want tag %q", vErrs, tt.wantTag)
		})
	}
}

func newUserWithPwd(pwd string) NewUser {
	return NewUser{
		Name:            "Test User",
		Email:           "user@test.test",
		Password:        pwd,
		PasswordConfirm: pwd,
	}
}

func TestUpdateUser_passwordOptional(t *testing.T) {
	uu := UpdateUser{Name: "New Name", Email: "user@test.test"}
	if err := core.Validate.Struct(uu); err != nil {
		t.Errorf("Struct() failed: %v", err)
	}

	uu.Password = "short"
	uu.PasswordConfirm = "short"
	if err := core.Validate.Struct(uu); err == nil {
		t.Error("Struct() accepted a weak password on update")
	}
}
