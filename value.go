package argumentum

import "strconv"

// ValueSetter is the write capability bound to one option or positional.
// SetValue converts a raw token and writes it to the destination: scalar
// destinations are overwritten, sequence destinations appended. Reset
// restores the destination to its default value. Callers may pass their own
// ValueSetter to AddArgument for custom destination types.
type ValueSetter interface {
	SetValue(raw string) error
	Reset()
}

type scalarValue[T any] struct {
	dest    *T
	convert func(string) (T, error)
}

func (v *scalarValue[T]) SetValue(raw string) error {
	val, err := v.convert(raw)
	if err != nil {
		return err
	}
	*v.dest = val
	return nil
}

func (v *scalarValue[T]) Reset() {
	var zero T
	*v.dest = zero
}

type sliceValue[T any] struct {
	dest    *[]T
	convert func(string) (T, error)
}

func (v *sliceValue[T]) SetValue(raw string) error {
	val, err := v.convert(raw)
	if err != nil {
		return err
	}
	*v.dest = append(*v.dest, val)
	return nil
}

func (v *sliceValue[T]) Reset() {
	*v.dest = nil
}

// voidValue discards anything written to it. Used by help options.
type voidValue struct{}

func (voidValue) SetValue(string) error { return nil }
func (voidValue) Reset()                {}

// valueSlot wraps a ValueSetter with the assignment bookkeeping the parser
// needs. assigns counts writes through every activation of the owning
// option; optionAssigns counts writes through the current activation only
// and is reset exactly once per activation, before any value is written.
type valueSlot struct {
	setter        ValueSetter
	assigns       int
	optionAssigns int
	badArgs       bool
}

func (s *valueSlot) setValue(raw string) error {
	s.assigns++
	s.optionAssigns++
	return s.setter.SetValue(raw)
}

// markBadArgument bumps the activation counter without converting, so that
// flag-value substitution does not later treat the slot as unassigned.
func (s *valueSlot) markBadArgument() {
	s.optionAssigns++
	s.badArgs = true
}

func (s *valueSlot) onOptionStarted() {
	s.optionAssigns = 0
}

func (s *valueSlot) reset() {
	s.assigns = 0
	s.optionAssigns = 0
	s.badArgs = false
	s.setter.Reset()
}

func identity(s string) (string, error) { return s, nil }

func parseInt(s string) (int, error) { return strconv.Atoi(s) }

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat64(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// newSlot builds the slot for a destination. The second result reports
// whether the destination is a sequence, which changes the default arity of
// positionals. A nil slot means the destination type is unsupported.
func newSlot(dest any) (*valueSlot, bool) {
	switch d := dest.(type) {
	case ValueSetter:
		return &valueSlot{setter: d}, false
	case *string:
		return &valueSlot{setter: &scalarValue[string]{dest: d, convert: identity}}, false
	case *bool:
		return &valueSlot{setter: &scalarValue[bool]{dest: d, convert: strconv.ParseBool}}, false
	case *int:
		return &valueSlot{setter: &scalarValue[int]{dest: d, convert: parseInt}}, false
	case *int64:
		return &valueSlot{setter: &scalarValue[int64]{dest: d, convert: parseInt64}}, false
	case *float64:
		return &valueSlot{setter: &scalarValue[float64]{dest: d, convert: parseFloat64}}, false
	case *[]string:
		return &valueSlot{setter: &sliceValue[string]{dest: d, convert: identity}}, true
	case *[]bool:
		return &valueSlot{setter: &sliceValue[bool]{dest: d, convert: strconv.ParseBool}}, true
	case *[]int:
		return &valueSlot{setter: &sliceValue[int]{dest: d, convert: parseInt}}, true
	case *[]int64:
		return &valueSlot{setter: &sliceValue[int64]{dest: d, convert: parseInt64}}, true
	case *[]float64:
		return &valueSlot{setter: &sliceValue[float64]{dest: d, convert: parseFloat64}}, true
	}
	return nil, false
}
