package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		RequestID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{RequestID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{RequestID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "RequestID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDecisionValidation(t *testing.T) {
	type P struct {
		Action string `validate:"decision"`
	}
	cv := NewValidator()

	for _, v := range []string{"APPROVED", "REJECTED", "RETURNED"} {
		if err := cv.Validate(P{Action: v}); err != nil {
			t.Fatalf("expected decision OK for %q, got %v", v, err)
		}
	}
	for _, v := range []string{"", "approved", "WITHDRAWN", "MAYBE", "PENDING"} {
		err := cv.Validate(P{Action: v})
		if err == nil {
			t.Fatalf("expected decision error for %q", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Action", "must be one of APPROVED, REJECTED, RETURNED") {
			t.Fatalf("expected decision message for %q, got %+v", v, fe)
		}
	}
}

func TestPriorityValidation(t *testing.T) {
	type P struct {
		Priority string `validate:"priority"`
	}
	cv := NewValidator()

	// empty is allowed: the usecase defaults it
	for _, v := range []string{"", "LOW", "MEDIUM", "HIGH", "URGENT"} {
		if err := cv.Validate(P{Priority: v}); err != nil {
			t.Fatalf("expected priority OK for %q, got %v", v, err)
		}
	}
	for _, v := range []string{"low", "WHENEVER", "P1"} {
		err := cv.Validate(P{Priority: v})
		if err == nil {
			t.Fatalf("expected priority error for %q", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Priority", "must be one of LOW, MEDIUM, HIGH, URGENT") {
			t.Fatalf("expected priority message for %q, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
		Min  int    `validate:"gte=1"`
		Max  int    `validate:"lte=5"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name: "", // required
		Min:  0,  // gte=1
		Max:  6,  // lte=5
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 1") {
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
