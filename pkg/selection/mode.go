package selection

// Mode is the selection cardinality. It is either SingleMode or MultiMode.
type Mode interface {
	// Limit reports the maximum number of raw entries kept before matching.
	// Zero means unbounded.
	Limit() int
	isMode()
}

// SingleMode selects at most one option (radio group).
type SingleMode struct{}

func (SingleMode) Limit() int { return 1 }
func (SingleMode) isMode()    {}

// MultiMode selects any number of options, capped at Max when Max > 0.
type MultiMode struct {
	Max int
}

func (m MultiMode) Limit() int {
	if m.Max < 0 {
		return 0
	}
	return m.Max
}

func (MultiMode) isMode() {}

// ModeFor derives the mode from a nullable maxOptions setting. A cap of
// exactly one is the only signal for single mode; nil, zero and negative caps
// are unbounded.
func ModeFor(maxOptions *int) Mode {
	if maxOptions == nil || *maxOptions <= 0 {
		return MultiMode{}
	}
	if *maxOptions == 1 {
		return SingleMode{}
	}
	return MultiMode{Max: *maxOptions}
}

// IsSingle reports whether mode selects a single option. A nil mode is
// treated as unbounded multi-select.
func IsSingle(mode Mode) bool {
	_, ok := mode.(SingleMode)
	return ok
}

// Constraint is the stored field configuration that drives the mode.
type Constraint struct {
	MaxOptions *int `json:"maxOptions" yaml:"maxOptions"`
}

// Mode returns the selection mode for the constraint.
func (c Constraint) Mode() Mode {
	return ModeFor(c.MaxOptions)
}

// MaxOptions returns a pointer to n, for building constraints inline.
func MaxOptions(n int) *int {
	return &n
}
