package bmi

// Snapshot is the read-only state a display layer renders.
type Snapshot struct {
	Height string
	Weight string
	Result *Result // nil when no result is shown
	Error  string  // empty when no error is shown
}

// Calculator holds the form state: raw height and weight text plus the
// outcome of the last Calculate call. It is not safe for concurrent use.
type Calculator struct {
	height string
	weight string
	result *Result
	err    error

	observers map[int]func(Snapshot)
	nextID    int
}

// NewCalculator creates a calculator with empty inputs.
func NewCalculator() *Calculator {
	return &Calculator{observers: make(map[int]func(Snapshot))}
}

// SetHeight replaces the raw height text.
func (c *Calculator) SetHeight(text string) {
	c.height = text
	c.notify()
}

// SetWeight replaces the raw weight text.
func (c *Calculator) SetWeight(text string) {
	c.weight = text
	c.notify()
}

// Calculate validates the current inputs and computes the result.
// A failure replaces any previously shown result with the error.
func (c *Calculator) Calculate() (Result, error) {
	res, err := Compute(c.height, c.weight)
	if err != nil {
		c.result = nil
		c.err = err
	} else {
		c.result = &res
		c.err = nil
	}
	c.notify()
	return res, err
}

// Snapshot returns the current state.
func (c *Calculator) Snapshot() Snapshot {
	s := Snapshot{Height: c.height, Weight: c.weight}
	if c.result != nil {
		r := *c.result
		s.Result = &r
	}
	if c.err != nil {
		s.Error = c.err.Error()
	}
	return s
}

// Subscribe registers fn to be called after every state change.
// The returned func removes the subscription.
func (c *Calculator) Subscribe(fn func(Snapshot)) func() {
	if c.observers == nil {
		c.observers = make(map[int]func(Snapshot))
	}
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return func() {
		delete(c.observers, id)
	}
}

func (c *Calculator) notify() {
	if len(c.observers) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range c.observers {
		fn(snap)
	}
}
