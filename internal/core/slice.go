package core

// SliceIndices is the normalized (start, stop, step) a slice resolves to
// against a sequence of the given length (spec §4.D "indices(len)").
type SliceIndices struct {
	Start int
	Stop  int
	Step  int
}

// sliceComponent extracts an int64 from an Option<Value> slice component,
// where VKNone means "unspecified".
func sliceComponent(v Value) (n int64, present bool) {
	switch v.Kind {
	case VKNone, VKUndefined:
		return 0, false
	case VKInt:
		return v.Int64, true
	case VKBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	default:
		return 0, true
	}
}

// Indices normalizes (start, stop, step) against length, CPython's
// slice.indices(len) algorithm. Fails if step == 0 (spec §8 "Slice
// normalization").
func (s SliceData) Indices(length int) (SliceIndices, *RunError) {
	stepN, stepPresent := sliceComponent(s.Step)
	step := int64(1)
	if stepPresent {
		step = stepN
	}
	if step == 0 {
		return SliceIndices{}, NewValueErrorSliceStepZero()
	}

	lower, upper := int64(0), int64(length)
	if step < 0 {
		lower, upper = int64(-1), int64(length-1)
	}

	start := lower
	if step < 0 {
		start = upper
	}
	if startN, ok := sliceComponent(s.Start); ok {
		start = clampIndex(startN, int64(length), lower, upper)
	}

	stop := upper
	if step < 0 {
		stop = lower
	}
	if stopN, ok := sliceComponent(s.Stop); ok {
		stop = clampIndex(stopN, int64(length), lower, upper)
	}

	return SliceIndices{Start: int(start), Stop: int(stop), Step: int(step)}, nil
}

func clampIndex(idx, length, lower, upper int64) int64 {
	if idx < 0 {
		idx += length
		if idx < lower {
			idx = lower
		}
	} else if idx > upper {
		idx = upper
	}
	return idx
}
