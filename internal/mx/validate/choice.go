package validate

import "fmt"

// strictChoices toggles exactly-one-of enforcement for choice nodes. The
// schema-generated validators historically accepted choice groups with no
// populated alternative; strict mode closes that gap. Set once at startup,
// read-only afterwards.
var strictChoices bool

// SetStrictChoices enables or disables exactly-one-of enforcement for choice
// nodes. Call before any validation runs; the flag is not synchronized.
func SetStrictChoices(strict bool) {
	strictChoices = strict
}

// StrictChoices reports whether exactly-one-of enforcement is active.
func StrictChoices() bool {
	return strictChoices
}

// CheckChoice verifies the population of a choice group's alternatives. In
// the default permissive mode any population, including none, is accepted
// and the populated alternatives are validated by the caller. In strict mode
// exactly one alternative must be populated.
func CheckChoice(name string, populated ...bool) error {
	if !strictChoices {
		return nil
	}
	count := 0
	for _, p := range populated {
		if p {
			count++
		}
	}
	if count == 1 {
		return nil
	}
	if count == 0 {
		return NewError(CodeRequired,
			fmt.Sprintf("%s requires exactly one alternative to be set", name))
	}
	return NewError(CodeRequired,
		fmt.Sprintf("%s has %d alternatives set, exactly one is allowed", name, count))
}
