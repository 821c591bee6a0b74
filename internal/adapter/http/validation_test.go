package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestNotBlankValidation(t *testing.T) {
	type P struct {
		Name string `json:"name" validate:"notblank"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Name: "Jane"}); err != nil {
		t.Fatalf("expected valid, got err: %v", err)
	}
	for _, s := range []string{"", " ", "\t\n"} {
		err := cv.Validate(P{Name: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "name", "is required") {
			t.Fatalf("expected 'is required' on json name for %q, got: %+v", s, fe)
		}
	}
}

func TestCreateLoanReq_OnlyPresenceChecked(t *testing.T) {
	cv := NewValidator()

	// number formats are left to the loan use case
	for _, ok := range []createLoanReq{
		{MemberID: "3", Amount: "1000.50", InterestRate: "5"},
		{MemberID: " 1 ", Amount: "1e3", InterestRate: ".5"},
		{MemberID: "x", Amount: "abc", InterestRate: "?"},
	} {
		if err := cv.Validate(&ok); err != nil {
			t.Fatalf("expected %+v to pass presence checks, got %v", ok, err)
		}
	}

	err := cv.Validate(&createLoanReq{MemberID: "3", Amount: "  ", InterestRate: ""})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "amount", "is required") || !containsFieldMsg(fe, "interest_rate", "is required") {
		t.Fatalf("missing required messages: %+v", fe)
	}
	if containsFieldMsg(fe, "member_id", "") {
		t.Fatalf("member_id should pass: %+v", fe)
	}
}

func TestNumericTagMapping(t *testing.T) {
	type P struct {
		Amount string `json:"amount" validate:"numeric"`
		Count  string `json:"count" validate:"number"`
	}
	err := NewValidator().Validate(P{Amount: "abc", Count: "1.5"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "amount", "must be a number") || !containsFieldMsg(fe, "count", "whole number") {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
		Min  int    `validate:"gte=10"`
		Max  int    `validate:"lte=5"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Min: 9, Max: 6})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
