// Package record implements runtime-defined record types: a Type describes
// an ordered field layout with optional trailing defaults and an optional
// validator, and every Record built from it holds one value per field in a
// fixed slot array.
//
// Basic usage:
//
//	rgb, err := record.NewType("Rgb", []string{"red", "green", "blue"},
//	    []any{0, 0, 0}, nil)
//	if err != nil {
//	    // Handle schema errors
//	}
//
//	navy, err := rgb.Make(nil, map[string]any{"blue": 128})
//	// navy.String() == `Rgb(red=0, green=0, blue=128)`
//
// Fields are reachable by position or by name, and positions may be
// negative to count from the end:
//
//	v, _ := navy.Get(-1)        // 128
//	v, _ = navy.Field("red")    // 0
//	_ = navy.Set(0, 30)
//	_ = navy.SetField("green", 30)
//
// A validator sees every value bound to a slot, at construction and on
// every later set, and decides what is actually stored:
//
//	clampByte := func(i int, v any) (any, error) {
//	    n, ok := v.(int)
//	    if !ok || n < 0 || n > 255 {
//	        return nil, fmt.Errorf("component must be 0-255, got %v", v)
//	    }
//	    return n, nil
//	}
//
// Construction is atomic: if any field fails validation no record is
// produced, and a rejected set leaves the previous value in place.
//
// Types are immutable and freely shareable; records are single-owner and
// need external locking if shared across goroutines.
package record
