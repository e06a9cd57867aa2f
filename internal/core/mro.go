package core

// LinearizeMRO computes the C3 method resolution order for a class whose
// direct bases (already-linearized, each ending in `object`) are given in
// left-to-right declaration order, matching CPython's algorithm exactly
// (spec §4.E, §8 "diamond inheritance: D(B,C), B(A), C(A) -> [D,B,C,A,object]").
// self is prepended to the result. Returns a TypeError matching CPython's
// wording when no consistent order exists.
func LinearizeMRO(self HeapID, baseMROs [][]HeapID, bases []HeapID) ([]HeapID, *RunError) {
	// sequences: one list per direct base's own MRO, plus one list of the
	// bases themselves in declaration order (C3's "merge" inputs).
	sequences := make([][]HeapID, 0, len(baseMROs)+1)
	for _, m := range baseMROs {
		if len(m) > 0 {
			cp := make([]HeapID, len(m))
			copy(cp, m)
			sequences = append(sequences, cp)
		}
	}
	if len(bases) > 0 {
		cp := make([]HeapID, len(bases))
		copy(cp, bases)
		sequences = append(sequences, cp)
	}

	merged, ok := c3Merge(sequences)
	if !ok {
		return nil, NewMROError()
	}

	result := make([]HeapID, 0, len(merged)+1)
	result = append(result, self)
	result = append(result, merged...)
	return result, nil
}

// c3Merge implements C3's merge step: repeatedly take the first head of any
// sequence that does not appear in the tail of any other sequence, until
// every sequence is exhausted.
func c3Merge(sequences [][]HeapID) ([]HeapID, bool) {
	var out []HeapID
	for {
		sequences = dropEmpty(sequences)
		if len(sequences) == 0 {
			return out, true
		}

		var pick HeapID
		found := false
		for _, seq := range sequences {
			head := seq[0]
			if !appearsInAnyTail(head, sequences) {
				pick = head
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}

		out = append(out, pick)
		for i, seq := range sequences {
			sequences[i] = removeHead(seq, pick)
		}
	}
}

func dropEmpty(sequences [][]HeapID) [][]HeapID {
	out := sequences[:0]
	for _, s := range sequences {
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func appearsInAnyTail(id HeapID, sequences [][]HeapID) bool {
	for _, seq := range sequences {
		for _, t := range seq[1:] {
			if t == id {
				return true
			}
		}
	}
	return false
}

func removeHead(seq []HeapID, id HeapID) []HeapID {
	if len(seq) > 0 && seq[0] == id {
		return seq[1:]
	}
	return seq
}
