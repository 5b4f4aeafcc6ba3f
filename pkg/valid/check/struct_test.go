package check

import (
	"testing"
)

type signup struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=0,lte=130"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()
	v := Struct[signup]()

	r := v(signup{Name: "ann", Email: "ann@example.com", Age: 30})
	if !r.IsSuccess() {
		t.Fatalf("expected acceptance, got %v", r.Errors())
	}
}

func TestStruct_CollectsAllFieldErrors(t *testing.T) {
	t.Parallel()
	v := Struct[signup]()

	r := v(signup{Name: "", Email: "not-an-email", Age: 200})
	if !r.IsFailure() {
		t.Fatalf("expected rejection")
	}

	errs := r.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}

	// errors arrive in field declaration order with tag messages and
	// namespace contexts
	if errs[0].Message() != "required" || errs[0].Context() != "signup.Name" {
		t.Fatalf("unexpected first error: %v / %v", errs[0].Message(), errs[0].Context())
	}
	if errs[1].Message() != "email" || errs[1].Context() != "signup.Email" {
		t.Fatalf("unexpected second error: %v / %v", errs[1].Message(), errs[1].Context())
	}
	if errs[2].Message() != "lte" || errs[2].Context() != "signup.Age" {
		t.Fatalf("unexpected third error: %v / %v", errs[2].Message(), errs[2].Context())
	}
}

func TestStruct_MessageLookup(t *testing.T) {
	t.Parallel()
	v := Struct[signup]()

	r := v(signup{Name: "ann", Email: "nope", Age: 30})
	if !r.HasMessage("email") {
		t.Fatalf("expected failed tag in the message index")
	}
}
