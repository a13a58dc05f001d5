package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Validator is implemented by every node of a message tree. Composite nodes
// validate their own scalar fields first, then their children, in declared
// order, and return the first violation encountered anywhere in the subtree.
type Validator interface {
	Validate() error
}

// Sectioned is implemented by document roots whose top-level sections can be
// validated independently, so callers can gather one violation per section
// instead of stopping at the first.
type Sectioned interface {
	Sections() []Validator
}

// Constraint is the set of checks attached to a scalar string field.
// A zero MinLen imposes no lower bound and a zero MaxLen no upper bound.
// Lengths are counted in Unicode code points, not bytes. Pattern must match
// the full value; build it with MustPattern so it is anchored.
type Constraint struct {
	MinLen  int
	MaxLen  int
	Pattern *regexp.Regexp
}

// CheckString applies the constraint to value. Checks run in a fixed order
// and stop at the first violation: minimum length, maximum length, pattern.
func (c Constraint) CheckString(field, value string) error {
	count := utf8.RuneCountInString(value)
	if c.MinLen > 0 && count < c.MinLen {
		return NewError(CodeMinLength,
			fmt.Sprintf("%s is shorter than the minimum length of %d", field, c.MinLen))
	}
	if c.MaxLen > 0 && count > c.MaxLen {
		return NewError(CodeMaxLength,
			fmt.Sprintf("%s exceeds the maximum length of %d", field, c.MaxLen))
	}
	if c.Pattern != nil && !c.Pattern.MatchString(value) {
		return NewError(CodePattern,
			fmt.Sprintf("%s does not match the required pattern", field))
	}
	return nil
}

// CheckOptional applies the constraint to an optional field. An absent field
// is always valid regardless of the constraint set.
func (c Constraint) CheckOptional(field string, value *string) error {
	if value == nil {
		return nil
	}
	return c.CheckString(field, *value)
}

// CheckEach applies the constraint to every element of a repeated field in
// order, stopping at the first violating element.
func (c Constraint) CheckEach(field string, values []string) error {
	for i := range values {
		if err := c.CheckString(field, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Each validates a repeated child in sequence order, each element fully
// validated before moving to the next.
func Each[T Validator](items []T) error {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
