package validate

import (
	"errors"
	"testing"
)

func TestCheckStringReportsMinimumLengthViolation(t *testing.T) {
	c := Constraint{MinLen: 1, MaxLen: 4}
	err := c.CheckString("msg_id", "")
	verr := AsValidationError(err)
	if verr == nil {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if verr.Code != CodeMinLength {
		t.Fatalf("expected code %d, got %d", CodeMinLength, verr.Code)
	}
	if verr.Message != "msg_id is shorter than the minimum length of 1" {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
}

func TestCheckStringReportsMaximumLengthViolation(t *testing.T) {
	c := Constraint{MinLen: 1, MaxLen: 4}
	err := c.CheckString("msg_id", "ABCDE")
	verr := AsValidationError(err)
	if verr == nil || verr.Code != CodeMaxLength {
		t.Fatalf("expected code %d, got %v", CodeMaxLength, err)
	}
	if verr.Message != "msg_id exceeds the maximum length of 4" {
		t.Fatalf("unexpected message: %q", verr.Message)
	}
}

func TestCheckStringReportsPatternViolation(t *testing.T) {
	c := Constraint{Pattern: PatternCountryCode}
	err := c.CheckString("ctry", "us")
	verr := AsValidationError(err)
	if verr == nil || verr.Code != CodePattern {
		t.Fatalf("expected code %d, got %v", CodePattern, err)
	}
}

func TestCheckStringCountsRunesNotBytes(t *testing.T) {
	c := Constraint{MinLen: 1, MaxLen: 4}
	if err := c.CheckString("nm", "日本語変換"[:12]); err != nil {
		t.Fatalf("expected 4 runes to satisfy max 4, got %v", err)
	}
	if err := c.CheckString("nm", "日本語変換"); err == nil {
		t.Fatal("expected 5 runes to violate max 4")
	}
}

func TestCheckStringAppliesChecksInOrder(t *testing.T) {
	// An empty value violates both the minimum length and the pattern; the
	// minimum length check wins.
	c := Constraint{MinLen: 1, MaxLen: 4, Pattern: PatternCountryCode}
	err := c.CheckString("ctry", "")
	verr := AsValidationError(err)
	if verr == nil || verr.Code != CodeMinLength {
		t.Fatalf("expected code %d first, got %v", CodeMinLength, err)
	}

	// A too-long value that also fails the pattern reports the length.
	err = c.CheckString("ctry", "ABCDEF")
	verr = AsValidationError(err)
	if verr == nil || verr.Code != CodeMaxLength {
		t.Fatalf("expected code %d before pattern, got %v", CodeMaxLength, err)
	}
}

func TestCheckOptionalAcceptsAbsentValue(t *testing.T) {
	c := Constraint{MinLen: 1, MaxLen: 4, Pattern: PatternCountryCode}
	if err := c.CheckOptional("ctry", nil); err != nil {
		t.Fatalf("absent optional field must be valid, got %v", err)
	}

	bad := "usa"
	if err := c.CheckOptional("ctry", &bad); err == nil {
		t.Fatal("present optional field must still be checked")
	}
}

func TestCheckEachStopsAtFirstViolation(t *testing.T) {
	c := Constraint{MinLen: 1, MaxLen: 3}
	err := c.CheckEach("adr_line", []string{"ok", "", "also way too long"})
	verr := AsValidationError(err)
	if verr == nil || verr.Code != CodeMinLength {
		t.Fatalf("expected the empty element to be reported first, got %v", err)
	}
}

func TestUETRPattern(t *testing.T) {
	c := Constraint{Pattern: PatternUETR}
	if err := c.CheckString("uetr", "3b241101-e2bb-4255-8caf-4136c566a962"); err != nil {
		t.Fatalf("expected valid UETR to pass, got %v", err)
	}
	err := c.CheckString("uetr", "not-a-uuid")
	verr := AsValidationError(err)
	if verr == nil || verr.Code != CodePattern {
		t.Fatalf("expected code %d, got %v", CodePattern, err)
	}
}

func TestPatternsAreAnchored(t *testing.T) {
	c := Constraint{Pattern: PatternCountryCode}
	if err := c.CheckString("ctry", "USA"); err == nil {
		t.Fatal("a three-letter value must not match the two-letter pattern")
	}
	if err := c.CheckString("ctry", "xUSx"); err == nil {
		t.Fatal("an embedded match must not satisfy the anchored pattern")
	}
}

func TestCheckChoiceIsPermissiveByDefault(t *testing.T) {
	if err := CheckChoice("id", false, false); err != nil {
		t.Fatalf("permissive mode must accept an empty choice, got %v", err)
	}
	if err := CheckChoice("id", true, true); err != nil {
		t.Fatalf("permissive mode must accept multiple alternatives, got %v", err)
	}
}

func TestCheckChoiceStrictRequiresExactlyOne(t *testing.T) {
	SetStrictChoices(true)
	defer SetStrictChoices(false)

	if err := CheckChoice("id", true, false); err != nil {
		t.Fatalf("one populated alternative must pass, got %v", err)
	}

	err := CheckChoice("id", false, false)
	verr := AsValidationError(err)
	if verr == nil || verr.Code != CodeRequired {
		t.Fatalf("expected code %d for empty choice, got %v", CodeRequired, err)
	}

	err = CheckChoice("id", true, true)
	verr = AsValidationError(err)
	if verr == nil || verr.Code != CodeRequired {
		t.Fatalf("expected code %d for over-populated choice, got %v", CodeRequired, err)
	}
}

func TestValidationErrorPathPrefix(t *testing.T) {
	err := NewError(CodeMaxLength, "msg_id exceeds the maximum length of 35").WithPath("GrpHdr")
	if err.Error() != "GrpHdr: msg_id exceeds the maximum length of 35" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
}

func TestCollectorAggregatesAcrossCalls(t *testing.T) {
	c := NewCollector()
	if c.HasErrors() {
		t.Fatal("new collector must be empty")
	}

	c.Collect(nil)
	c.Collect(NewError(CodeMinLength, "first"))
	c.Collect(NewError(CodePattern, "second"))
	c.Collect(errors.New("plain failure"))

	if c.Len() != 3 {
		t.Fatalf("expected 3 recorded errors, got %d", c.Len())
	}
	errs := c.Errors()
	if errs[0].Code != CodeMinLength || errs[1].Code != CodePattern {
		t.Fatalf("errors out of insertion order: %+v", errs)
	}
	if errs[2].Code != CodeGeneration {
		t.Fatalf("plain errors must be wrapped under %d, got %d", CodeGeneration, errs[2].Code)
	}
	if c.HasCritical() {
		t.Fatal("no critical error was recorded")
	}

	c.AddCritical(NewError(CodeRequired, "missing"))
	if !c.HasCritical() {
		t.Fatal("expected critical flag after AddCritical")
	}
}
