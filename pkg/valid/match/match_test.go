package match

import (
	"testing"

	"github.com/ib-77/valid3/pkg/valid"
	"github.com/ib-77/valid3/pkg/valid/apply"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	if v, ok := Success(valid.Success(5)); !ok || v != 5 {
		t.Fatalf("expected candidate 5, got %v, ok=%v", v, ok)
	}
	if v, ok := Success(valid.Fail[int]()); ok || v != 0 {
		t.Fatalf("failure should not extract, got %v, ok=%v", v, ok)
	}
}

func TestSuccessOf(t *testing.T) {
	t.Parallel()

	if !SuccessOf(valid.Success("a"), "a") {
		t.Fatalf("expected exact match")
	}
	if SuccessOf(valid.Success("a"), "b") {
		t.Fatalf("different candidate should not match")
	}
	if SuccessOf(valid.Fail[string](), "a") {
		t.Fatalf("failure should not match any candidate")
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()

	errs, ok := Failure(valid.Fail[int](valid.NewError(1, "m1", nil)))
	if !ok || len(errs) != 1 || errs[0].Message() != "m1" {
		t.Fatalf("expected one error m1, got %v, ok=%v", errs, ok)
	}

	if _, ok := Failure(valid.Success(1)); ok {
		t.Fatalf("success should not match failure")
	}

	// empty-error failures still match
	errs, ok = Failure(valid.Fail[int]())
	if !ok || len(errs) != 0 {
		t.Fatalf("empty failure should match with no errors")
	}
}

func TestFailureWithMessage(t *testing.T) {
	t.Parallel()
	f := valid.Fail[int](valid.NewError(1, "m1", nil))

	if !FailureWithMessage(f, "m1") {
		t.Fatalf("expected message m1 to match")
	}
	if FailureWithMessage(f, "m2") {
		t.Fatalf("absent message should not match")
	}
	if FailureWithMessage(valid.Success(1), "m1") {
		t.Fatalf("success never matches a message")
	}
}

func TestFailureWithMessage_AfterAugmentation(t *testing.T) {
	t.Parallel()
	f := valid.Fail[int](valid.NewError(1, "m1", nil))
	f = apply.AugmentMessages(f, "extra")

	if !FailureWithMessage(f, "m1") {
		t.Fatalf("original message must still match after augmentation")
	}
	if !FailureWithMessage(f, valid.Pair{Outer: "extra", Inner: "m1"}) {
		t.Fatalf("composite form must match too")
	}
}

func TestFirstError(t *testing.T) {
	t.Parallel()

	e1 := valid.NewError(1, "m1", nil)
	e2 := valid.NewError(2, "m2", nil)
	if e, ok := FirstError(valid.Fail[int](e1, e2)); !ok || e != e1 {
		t.Fatalf("expected earliest error, got %v, ok=%v", e, ok)
	}

	if _, ok := FirstError(valid.Success(1)); ok {
		t.Fatalf("success has no errors")
	}
	if _, ok := FirstError(valid.Fail[int]()); ok {
		t.Fatalf("empty failure has no errors")
	}
}
