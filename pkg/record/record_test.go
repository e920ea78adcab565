package record

import (
	"errors"
	"fmt"
	"testing"
)

func newPoint(t *testing.T) *Type {
	t.Helper()
	typ, err := NewType("Point", []string{"x", "y", "z"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	return typ
}

func TestGetNormalizesNegativeIndexes(t *testing.T) {
	r := newPoint(t).MustNew(10, 20, 30)

	tests := []struct {
		index   int
		want    any
		wantErr bool
	}{
		{0, 10, false},
		{1, 20, false},
		{2, 30, false},
		{-1, 30, false},
		{-2, 20, false},
		{-3, 10, false},
		{3, nil, true},
		{-4, nil, true},
		{99, nil, true},
	}

	for _, tt := range tests {
		got, err := r.Get(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("Get(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Get(%d) error = %v, want ErrIndexOutOfRange", tt.index, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestSetByIndexAndName(t *testing.T) {
	r := newPoint(t).MustNew(1, 2, 3)

	if err := r.Set(-1, 99); err != nil {
		t.Fatalf("Set(-1) error = %v", err)
	}
	if v, _ := r.Get(2); v != 99 {
		t.Errorf("Get(2) = %v, want 99", v)
	}

	if err := r.SetField("x", 7); err != nil {
		t.Fatalf("SetField(x) error = %v", err)
	}
	if v, _ := r.Field("x"); v != 7 {
		t.Errorf("Field(x) = %v, want 7", v)
	}

	if err := r.Set(3, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Set(3) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := r.SetField("w", 0); !errors.Is(err, ErrUnknownField) {
		t.Errorf("SetField(w) error = %v, want ErrUnknownField", err)
	}
	if _, err := r.Field("w"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Field(w) error = %v, want ErrUnknownField", err)
	}
}

func TestSetRoundTripsThroughValidator(t *testing.T) {
	// The stored value is the validator's accepted value, not the input.
	trunc := func(i int, value any) (any, error) {
		if f, ok := value.(float64); ok {
			return int(f), nil
		}
		return value, nil
	}
	typ, err := NewType("Point", []string{"x", "y"}, nil, trunc)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(1, 2)

	for _, i := range []int{0, 1, -1, -2} {
		if err := r.Set(i, 7.9); err != nil {
			t.Fatalf("Set(%d) error = %v", i, err)
		}
		got, err := r.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) error = %v", i, err)
		}
		if got != 7 {
			t.Errorf("Get(%d) after Set(%d, 7.9) = %v, want 7", i, i, got)
		}
	}
}

func TestSetIdempotentForAcceptedValue(t *testing.T) {
	typ, err := NewType("Rgb", []string{"red", "green", "blue"}, []any{0, 0, 0}, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(10, 20, 30)
	once := r.Clone()

	if err := once.Set(1, 20); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	twice := once.Clone()
	if err := twice.Set(1, 20); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !once.Equal(twice) || !r.Equal(twice) {
		t.Errorf("repeated set changed state: %v vs %v", once, twice)
	}
}

func TestRejectedSetRetainsPriorValue(t *testing.T) {
	nonNegative := func(i int, value any) (any, error) {
		if n, ok := value.(int); ok && n >= 0 {
			return n, nil
		}
		return nil, fmt.Errorf("must be a non-negative int, got %v", value)
	}
	typ, err := NewType("Size", []string{"width", "height"}, nil, nonNegative)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(640, 480)

	err = r.SetField("height", -5)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("SetField() error = %v, want *ValidationError", err)
	}
	if v, _ := r.Field("height"); v != 480 {
		t.Errorf("height after rejected set = %v, want 480", v)
	}

	if err := r.Set(0, -1); err == nil {
		t.Fatal("Set(0, -1) should fail")
	}
	if v, _ := r.Get(0); v != 640 {
		t.Errorf("width after rejected set = %v, want 640", v)
	}
}

func TestValuesAndAsMap(t *testing.T) {
	typ, err := NewType("Options", []string{"maxcolors", "shape", "zoom", "restore"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(5, "square", 0.9, true)

	values := r.Values()
	want := []any{5, "square", 0.9, true}
	for i, w := range want {
		if values[i] != w {
			t.Errorf("Values()[%d] = %v, want %v", i, values[i], w)
		}
	}

	// The returned slice is a copy.
	values[0] = 999
	if v, _ := r.Get(0); v != 5 {
		t.Errorf("Get(0) after mutating Values() = %v, want 5", v)
	}

	m := r.AsMap()
	if len(m) != 4 || m["shape"] != "square" || m["restore"] != true {
		t.Errorf("AsMap() = %v", m)
	}
}

func TestContains(t *testing.T) {
	r := newPoint(t).MustNew(3, 5, 5)

	tests := []struct {
		value any
		want  bool
	}{
		{5, true},
		{3, true},
		{4, false},
		{5.0, false}, // DeepEqual: no cross-kind numeric match
		{"5", false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.value); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	typ := newPoint(t)
	a := typ.MustNew(1, 2, 3)
	b := typ.MustNew(1, 2, 3)
	c := typ.MustNew(1, 2, 4)

	if !a.Equal(b) {
		t.Error("records with equal slots should be equal")
	}
	if a.Equal(c) {
		t.Error("records with differing slots should not be equal")
	}
	if a.Equal(nil) {
		t.Error("a record never equals nil")
	}
}

func TestCompare(t *testing.T) {
	typ := newPoint(t)

	tests := []struct {
		a, b []any
		want int
	}{
		{[]any{3, 4, 0}, []any{3, 5, 0}, -1},
		{[]any{3, 5, 0}, []any{3, 4, 0}, 1},
		{[]any{3, 4, 0}, []any{3, 4, 0}, 0},
		{[]any{1, 0, 0}, []any{2, -1, -1}, -1},
		{[]any{1, 2.5, 0}, []any{1, 2, 0}, 1}, // int/float cross-compare
	}

	for _, tt := range tests {
		a := typ.MustNew(tt.a...)
		b := typ.MustNew(tt.b...)
		got, err := a.Compare(b)
		if err != nil {
			t.Errorf("Compare(%v, %v) error = %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareStringsAndBools(t *testing.T) {
	typ, err := NewType("Row", []string{"name", "active"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}

	a := typ.MustNew("alpha", false)
	b := typ.MustNew("beta", false)
	if c, err := a.Compare(b); err != nil || c != -1 {
		t.Errorf("Compare() = %d, %v, want -1, nil", c, err)
	}

	c := typ.MustNew("alpha", true)
	if got, err := a.Compare(c); err != nil || got != -1 {
		t.Errorf("Compare() = %d, %v, want -1, nil (false sorts before true)", got, err)
	}
}

func TestCompareErrors(t *testing.T) {
	typ := newPoint(t)
	other, err := NewType("Point", []string{"x", "y", "z"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}

	a := typ.MustNew(1, 2, 3)
	b := other.MustNew(1, 2, 3)
	if _, err := a.Compare(b); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Compare() across types error = %v, want ErrTypeMismatch", err)
	}

	mixed := typ.MustNew("one", 2, 3)
	if _, err := a.Compare(mixed); !errors.Is(err, ErrNotOrdered) {
		t.Errorf("Compare() across kinds error = %v, want ErrNotOrdered", err)
	}
}

func TestCompareSkipsEqualUnorderedSlots(t *testing.T) {
	typ, err := NewType("Task", []string{"payload", "priority"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}

	a := typ.MustNew(nil, 1)
	b := typ.MustNew(nil, 2)
	if c, err := a.Compare(b); err != nil || c != -1 {
		t.Errorf("Compare() = %d, %v, want -1, nil (equal nil slots are ties)", c, err)
	}

	x := typ.MustNew([]any{1, 2}, 5)
	y := typ.MustNew([]any{1, 2}, 3)
	if c, err := x.Compare(y); err != nil || c != 1 {
		t.Errorf("Compare() = %d, %v, want 1, nil (equal list slots are ties)", c, err)
	}

	same := typ.MustNew(nil, 1)
	if c, err := a.Compare(same); err != nil || c != 0 {
		t.Errorf("Compare() = %d, %v, want 0, nil", c, err)
	}

	// Unequal unordered slots still have no defined order.
	if _, err := a.Compare(x); !errors.Is(err, ErrNotOrdered) {
		t.Errorf("Compare() error = %v, want ErrNotOrdered", err)
	}
}

func TestSlice(t *testing.T) {
	typ, err := NewType("Rgba", []string{"red", "green", "blue", "alpha"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(100, 200, 250, 1.0)

	tests := []struct {
		i, j int
		want []any
	}{
		{0, 3, []any{100, 200, 250}},
		{0, 4, []any{100, 200, 250, 1.0}},
		{1, 3, []any{200, 250}},
		{0, -1, []any{100, 200, 250}},
		{-2, 4, []any{250, 1.0}},
		{0, 99, []any{100, 200, 250, 1.0}}, // clamps
		{3, 1, []any{}},                    // inverted collapses
		{-99, 1, []any{100}},
	}

	for _, tt := range tests {
		got := r.Slice(tt.i, tt.j)
		if len(got) != len(tt.want) {
			t.Errorf("Slice(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			continue
		}
		for k, w := range tt.want {
			if got[k] != w {
				t.Errorf("Slice(%d, %d)[%d] = %v, want %v", tt.i, tt.j, k, got[k], w)
			}
		}
	}
}

func TestSetSlice(t *testing.T) {
	typ, err := NewType("Rgba", []string{"red", "green", "blue", "alpha"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(100, 200, 250, 1.0)

	if err := r.SetSlice(1, 3, []any{20, 25}); err != nil {
		t.Fatalf("SetSlice() error = %v", err)
	}
	want := []any{100, 20, 25, 1.0}
	for i, w := range want {
		if got, _ := r.Get(i); got != w {
			t.Errorf("Get(%d) = %v, want %v", i, got, w)
		}
	}

	if err := r.SetSlice(1, 3, []any{1}); err == nil {
		t.Error("SetSlice() with a short value list should fail")
	}
}

func TestSetSliceIsAtomic(t *testing.T) {
	even := func(i int, value any) (any, error) {
		n, ok := value.(int)
		if !ok || n%2 != 0 {
			return nil, fmt.Errorf("must be even, got %v", value)
		}
		return n, nil
	}
	typ, err := NewType("Triple", []string{"a", "b", "c"}, nil, even)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(2, 4, 6)

	if err := r.SetSlice(0, 3, []any{8, 3, 10}); err == nil {
		t.Fatal("SetSlice() with a rejected value should fail")
	}
	want := []any{2, 4, 6}
	for i, w := range want {
		if got, _ := r.Get(i); got != w {
			t.Errorf("Get(%d) after rejected SetSlice = %v, want %v", i, got, w)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	typ := newPoint(t)
	a := typ.MustNew(1, 2, 3)
	b := a.Clone()

	if !a.Equal(b) {
		t.Fatal("clone should equal its source")
	}
	if err := b.Set(0, 99); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _ := a.Get(0); v != 1 {
		t.Errorf("source mutated through clone: Get(0) = %v, want 1", v)
	}
}

func TestString(t *testing.T) {
	typ, err := NewType("Options", []string{"maxcolors", "shape", "zoom", "restore"}, nil, nil)
	if err != nil {
		t.Fatalf("NewType() error = %v", err)
	}
	r := typ.MustNew(7, "square", 0.8, false)

	want := `Options(maxcolors=7, shape="square", zoom=0.8, restore=false)`
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
