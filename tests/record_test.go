package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/valid3/pkg/valid"
	"github.com/ib-77/valid3/pkg/valid/apply"
	"github.com/ib-77/valid3/pkg/valid/check"
	"github.com/ib-77/valid3/pkg/valid/flow"
	"github.com/ib-77/valid3/pkg/valid/mass"
	"github.com/ib-77/valid3/pkg/valid/match"
)

type person struct {
	Name    string
	Email   string
	Age     int
	Country string
}

func validateName(name string) valid.Result[string] {
	return check.NonEmptyString()(name)
}

func validateEmail(email string) valid.Result[string] {
	r, err := apply.ValidateAll(email, check.NonEmptyString(), check.MinLen(5))
	if err != nil {
		panic(err)
	}
	return apply.AugmentContexts(r, "email")
}

func validateAge(age int) valid.Result[int] {
	return check.InRange(0, 130)(age)
}

func validateCountry(country string) valid.Result[string] {
	return check.OneOf("de", "fr", "lt", "ua")(country)
}

// TestPersonValidation builds a person record from four independently
// validated fields, collecting every violation at once.
func TestPersonValidation(t *testing.T) {
	build := func(name, email string, age int, country string) person {
		return person{Name: name, Email: email, Age: age, Country: country}
	}

	good := apply.Validate4(build,
		validateName("Ann"),
		validateEmail("ann@example.com"),
		validateAge(30),
		validateCountry("lt"))

	assert.True(t, good.IsSuccess())
	assert.Equal(t, person{Name: "Ann", Email: "ann@example.com", Age: 30, Country: "lt"}, good.Candidate())

	bad := apply.Validate4(build,
		validateName(""),
		validateEmail("ann@example.com"),
		validateAge(200),
		validateCountry("xx"))

	assert.True(t, bad.IsFailure())
	// three rejected fields, in declaration order
	errs := bad.Errors()
	assert.Len(t, errs, 3)
	assert.Equal(t, "", errs[0].Candidate())
	assert.Equal(t, 200, errs[1].Candidate())
	assert.Equal(t, "xx", errs[2].Candidate())

	assert.True(t, match.FailureWithMessage(bad, check.MsgOutOfRange))
	assert.True(t, match.FailureWithMessage(bad, check.MsgNotOneOf))
}

// TestDependentPipeline runs a dependent chain: each check needs the value
// accepted by the previous one and failures short-circuit.
func TestDependentPipeline(t *testing.T) {
	ctx := context.Background()

	out := flow.FromCandidate(ctx, "ann@example.com").
		Check(check.NonEmptyString()).
		Check(check.MinLen(5)).
		Map(func(_ context.Context, s string) string { return s + " (verified)" }).
		Result()

	assert.True(t, out.IsSuccess())
	assert.Equal(t, "ann@example.com (verified)", out.Candidate())

	short := flow.FromCandidate(ctx, "").
		Check(check.NonEmptyString()).
		Check(check.MinLen(5)).
		Tag("signup").
		Result()

	// only the first rejection is recorded, tagged with the step context
	assert.Len(t, short.Errors(), 1)
	assert.True(t, short.HasMessage(check.MsgEmptyString))
	assert.Equal(t, valid.Pair{Outer: "signup", Inner: "check"}, short.Errors()[0].Context())
}

// TestBatchValidation validates a batch of countries concurrently and checks
// the combined failure pinpoints the offending positions.
func TestBatchValidation(t *testing.T) {
	ctx := context.Background()
	countries := []string{"de", "xx", "fr", "yy"}

	r := mass.SequenceOf(ctx, countries, validateCountry, 2)

	assert.True(t, r.IsFailure())
	errs := r.Errors()
	assert.Len(t, errs, 2)
	assert.Equal(t, valid.Pair{Outer: valid.Index(1), Inner: check.MsgNotOneOf}, errs[0].Message())
	assert.Equal(t, valid.Pair{Outer: valid.Index(3), Inner: check.MsgNotOneOf}, errs[1].Message())

	fmt.Printf("batch summary: %d of %d rejected\n", len(errs), len(countries))
}
