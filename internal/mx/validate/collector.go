package validate

// Collector accumulates validation errors across independent validation
// calls, for callers that want more than the first violation — for example
// batch endpoints validating many messages, or fixture self-checks. A single
// tree's Validate remains fail-fast; the collector never changes that
// contract.
type Collector struct {
	errors   []ValidationError
	critical bool
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a non-critical error.
func (c *Collector) Add(err *ValidationError) {
	if err == nil {
		return
	}
	c.errors = append(c.errors, *err)
}

// AddCritical records an error that makes the overall result unusable, such
// as a missing required element.
func (c *Collector) AddCritical(err *ValidationError) {
	if err == nil {
		return
	}
	c.critical = true
	c.errors = append(c.errors, *err)
}

// Collect records the validation error carried by err, if any. Non-validation
// errors are wrapped under CodeGeneration so they are never silently dropped.
func (c *Collector) Collect(err error) {
	if err == nil {
		return
	}
	if verr := AsValidationError(err); verr != nil {
		c.Add(verr)
		return
	}
	c.Add(NewError(CodeGeneration, err.Error()))
}

// HasErrors reports whether any error has been recorded.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// HasCritical reports whether a critical error has been recorded.
func (c *Collector) HasCritical() bool {
	return c.critical
}

// Errors returns the recorded errors in insertion order.
func (c *Collector) Errors() []ValidationError {
	return c.errors
}

// Len returns the number of recorded errors.
func (c *Collector) Len() int {
	return len(c.errors)
}
