package intern

import "testing"

func TestInternIdempotence(t *testing.T) {
	in := New()
	samples := []string{"hello", "world", "a longer identifier that needs the map", "hello"}
	ids := make(map[string]StringID)
	for _, s := range samples {
		id := in.Intern(s)
		if prior, seen := ids[s]; seen && prior != id {
			t.Fatalf("Intern(%q) not idempotent: got %v then %v", s, prior, id)
		}
		ids[s] = id
		got, ok := in.GetStr(id)
		if !ok || got != s {
			t.Fatalf("GetStr(Intern(%q)) = %q, %v; want %q, true", s, got, ok, s)
		}
	}
}

func TestSingleASCIICharStability(t *testing.T) {
	in := New()
	for b := 0; b < 128; b++ {
		s := string([]byte{byte(b)})
		id := in.Intern(s)
		if id != StringID(b) {
			t.Fatalf("Intern(%q) = %v, want StringID(%d)", s, id, b)
		}
		got, ok := in.GetStr(id)
		if !ok || got != s {
			t.Fatalf("GetStr(%v) = %q, %v; want %q, true", id, got, ok, s)
		}
	}
}

func TestStaticStringOffsetRoundTrip(t *testing.T) {
	in := New()
	for v := StaticString(0); v < ssCount; v++ {
		want := v.Text()
		id := in.Intern(want)
		if !id.IsStatic() {
			t.Fatalf("Intern(%q) = %v, want a static id for variant %d", want, id, v)
		}
		got, ok := in.GetStr(id)
		if !ok || got != want {
			t.Fatalf("GetStr(StaticString(%d).StringID()) = %q, %v; want %q, true", v, got, ok, want)
		}
	}
}

func TestInternDoesNotAllocateForRepeatedStaticLookup(t *testing.T) {
	in := New()
	before := len(in.userStrings)
	in.Intern("__init__")
	in.Intern("__init__")
	in.Intern("append")
	if len(in.userStrings) != before {
		t.Fatalf("interning static strings should never touch the per-session table, got %d new entries", len(in.userStrings)-before)
	}
}

func TestBytesAndLongIntNotDeduplicated(t *testing.T) {
	in := New()
	id1 := in.InternBytes([]byte("same"))
	id2 := in.InternBytes([]byte("same"))
	if id1 == id2 {
		t.Fatalf("InternBytes should never deduplicate, got same id %v twice", id1)
	}
	b1, ok := in.GetBytes(id1)
	if !ok || string(b1) != "same" {
		t.Fatalf("GetBytes(%v) = %q, %v", id1, b1, ok)
	}

	li1 := in.InternLongInt("123456789012345678901234567890")
	li2 := in.InternLongInt("123456789012345678901234567890")
	if li1 == li2 {
		t.Fatalf("InternLongInt should never deduplicate, got same id %v twice", li1)
	}
}

func TestExtFunctionDeduplicates(t *testing.T) {
	in := New()
	id1 := in.InternExtFunction("os.getcwd")
	id2 := in.InternExtFunction("os.getcwd")
	if id1 != id2 {
		t.Fatalf("InternExtFunction should deduplicate, got %v and %v", id1, id2)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	in := New()
	a := in.Intern("alpha")
	b := in.Intern("beta")
	in.InternBytes([]byte{1, 2, 3})
	in.InternLongInt("999999999999999999999999")

	strs, bytes, longInts := in.Snapshot()
	restored := Restore(strs, bytes, longInts)

	gotA, ok := restored.GetStr(a)
	if !ok || gotA != "alpha" {
		t.Fatalf("restored GetStr(a) = %q, %v", gotA, ok)
	}
	gotB, ok := restored.GetStr(b)
	if !ok || gotB != "beta" {
		t.Fatalf("restored GetStr(b) = %q, %v", gotB, ok)
	}
	if rb, ok := restored.GetBytes(0); !ok || string(rb) != string([]byte{1, 2, 3}) {
		t.Fatalf("restored GetBytes(0) = %v, %v", rb, ok)
	}

	// Re-interning "alpha" on the restored interner must reuse the rebuilt
	// dedup map, not append a duplicate entry.
	if again := restored.Intern("alpha"); again != a {
		t.Fatalf("restored Intern(%q) = %v, want %v (dedup map not rebuilt)", "alpha", again, a)
	}
}
