package sample

import (
	"strings"
	"testing"

	"mxmessage_backend/internal/mx/validate"
)

func TestFakeValuesSatisfyTheirPatterns(t *testing.T) {
	cases := []struct {
		kind    string
		pattern interface{ MatchString(string) bool }
	}{
		{"bic", validate.PatternBIC},
		{"uetr", validate.PatternUETR},
		{"lei", validate.PatternLEI},
		{"country_code", validate.PatternCountryCode},
		{"currency_code", validate.PatternCurrencyCode},
		{"iso8601_datetime", validate.PatternDateTimeOffset},
		{"iban", validate.PatternIBAN},
	}
	for _, tc := range cases {
		// Generators are random; exercise each a few times.
		for i := 0; i < 20; i++ {
			value, err := fakeValue(tc.kind, nil)
			if err != nil {
				t.Fatalf("%s: %v", tc.kind, err)
			}
			s, ok := value.(string)
			if !ok {
				t.Fatalf("%s produced %T, want string", tc.kind, value)
			}
			if !tc.pattern.MatchString(s) {
				t.Fatalf("%s produced %q, which fails its pattern", tc.kind, s)
			}
		}
	}
}

func TestFakeNumericRanges(t *testing.T) {
	for i := 0; i < 50; i++ {
		value, err := fakeValue("i64", []any{10.0, 20.0})
		if err != nil {
			t.Fatalf("i64: %v", err)
		}
		n, ok := value.(int64)
		if !ok || n < 10 || n > 20 {
			t.Fatalf("i64 out of range: %v", value)
		}
	}

	value, err := fakeValue("f64", []any{99.5, 99.5})
	if err != nil {
		t.Fatalf("f64: %v", err)
	}
	if f, ok := value.(float64); !ok || f != 99.5 {
		t.Fatalf("degenerate f64 range produced %v", value)
	}

	if _, err := fakeValue("i64", []any{"low", 20.0}); err == nil {
		t.Fatal("expected an error for non-numeric bounds")
	}
}

func TestFakeEnumAndRegex(t *testing.T) {
	value, err := fakeValue("enum", []any{"DEBT", "CRED", "SHAR"})
	if err != nil {
		t.Fatalf("enum: %v", err)
	}
	switch value {
	case "DEBT", "CRED", "SHAR":
	default:
		t.Fatalf("enum produced %v", value)
	}
	if _, err := fakeValue("enum", nil); err == nil {
		t.Fatal("expected an error for an empty enum")
	}

	value, err = fakeValue("regex", []any{"HIGH|NORM"})
	if err != nil {
		t.Fatalf("regex: %v", err)
	}
	if value != "HIGH" && value != "NORM" {
		t.Fatalf("regex alternation produced %v", value)
	}
}

func TestFakeDateFormats(t *testing.T) {
	value, err := fakeValue("date", []any{"%Y-%m-%d"})
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	s := value.(string)
	if !validate.MustPattern(`[0-9]{4}-[0-9]{2}-[0-9]{2}`).MatchString(s) {
		t.Fatalf("date produced %q", s)
	}

	value, err = fakeValue("date", []any{"%Y%m%d"})
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if s := value.(string); len(s) != 8 || strings.Contains(s, "-") {
		t.Fatalf("compact date produced %q", s)
	}
}

func TestFakeUnknownKindFails(t *testing.T) {
	_, err := fakeValue("ssn", nil)
	verr := validate.AsValidationError(err)
	if verr == nil || verr.Code != validate.CodeGeneration {
		t.Fatalf("expected code %d for an unknown generator, got %v", validate.CodeGeneration, err)
	}
}

func TestFakeAlphanumericLength(t *testing.T) {
	value, err := fakeValue("alphanumeric", []any{25.0})
	if err != nil {
		t.Fatalf("alphanumeric: %v", err)
	}
	s := value.(string)
	if len(s) != 25 {
		t.Fatalf("alphanumeric produced %d characters", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(alphanumeric, r) {
			t.Fatalf("alphanumeric produced %q outside its alphabet", r)
		}
	}
}
