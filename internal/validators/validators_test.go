package validators_test

import (
	"errors"
	"testing"

	"github.com/BruksfildServices01/barber-frontend/internal/validators"
)

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"ana@mail.com":   true,
		" ana@mail.co":   false,
		"ana@mail.co ":   false,
		"ana@mail":       false,
		"ana mail@x.com": false,
		"@mail.com":      false,
		"":               false,
	}
	for in, want := range cases {
		if got := validators.IsEmail(in); got != want {
			t.Fatalf("IsEmail(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestLoginInputValidate(t *testing.T) {
	errs := validators.LoginInput{Email: "ana@mail.com", Password: "12345"}.Validate()
	if errs["password"] != validators.MsgShortPassword {
		t.Fatalf("expected short password error, got %v", errs)
	}
	if _, ok := errs["email"]; ok {
		t.Fatal("email should be valid")
	}

	if errs := (validators.LoginInput{Email: "ana@mail.com", Password: "123456"}).Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	padded := validators.LoginInput{Email: " ana@mail.com", Password: "123456"}.Validate()
	if padded["email"] != validators.MsgInvalidEmail {
		t.Fatalf("expected padded email to be rejected, got %v", padded)
	}

	missing := validators.LoginInput{}.Validate()
	if missing["email"] != validators.MsgInvalidEmail || missing["password"] != validators.MsgShortPassword {
		t.Fatalf("expected both fields reported, got %v", missing)
	}
}

func TestRegisterInputValidate(t *testing.T) {
	errs := validators.RegisterInput{Name: "Al", Phone: "123", Email: "x", Password: "1"}.Validate()
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %v", errs)
	}
	if got := errs.First("name", "phone"); got != validators.MsgShortName {
		t.Fatalf("expected name error first, got %q", got)
	}

	ok := validators.RegisterInput{Name: "Ana", Phone: "3001234567", Email: "ana@mail.com", Password: "secret"}
	if errs := ok.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRegisterInputPhone(t *testing.T) {
	for _, p := range []string{"300123456", "30012345678", "300-123-45", "abcdefghij", "-300123456", " 300123456"} {
		in := validators.RegisterInput{Name: "Ana", Phone: p, Email: "ana@mail.com", Password: "secret"}
		if errs := in.Validate(); errs["phone"] != validators.MsgInvalidPhone {
			t.Fatalf("expected %q to be rejected, got %v", p, errs)
		}
	}
}

func TestTranslateIgnoresOtherErrors(t *testing.T) {
	if got := validators.Translate(errors.New("boom"), nil, "x"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if validators.IsValidation(errors.New("boom")) {
		t.Fatal("plain error is not a validation error")
	}
	if err := validators.Struct(validators.LoginInput{}); !validators.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
