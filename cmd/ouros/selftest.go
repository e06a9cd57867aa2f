package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ouros/internal/core"
	"ouros/internal/intern"
	"ouros/internal/resource"
	"ouros/internal/snapshot"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Exercise the interpreter core's invariants and report pass/fail",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		checks := []struct {
			name string
			fn   func() error
		}{
			{"interner idempotence", checkInternIdempotence},
			{"heap refcount conservation", checkHeapRefcounts},
			{"dict insertion order", checkDictOrder},
			{"exception subclassing", checkExceptionSubclassing},
			{"C3 linearization (diamond)", checkMRODiamond},
			{"snapshot round-trip", checkSnapshotRoundTrip},
		}

		failed := 0
		for _, c := range checks {
			if err := c.fn(); err != nil {
				failed++
				printResult(out, c.name, err)
			} else {
				printResult(out, c.name, nil)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d selftest check(s) failed", failed)
		}
		return nil
	},
}

func printResult(out io.Writer, name string, err error) {
	if err == nil {
		fmt.Fprintf(out, "%s %s\n", color.New(color.FgGreen, color.Bold).Sprint("ok"), name)
		return
	}
	fmt.Fprintf(out, "%s %s: %v\n", color.New(color.FgRed, color.Bold).Sprint("FAIL"), name, err)
}

func checkInternIdempotence() error {
	in := intern.New()
	a := in.Intern("hello")
	b := in.Intern("hello")
	if a != b {
		return fmt.Errorf("Intern(\"hello\") returned different ids: %v, %v", a, b)
	}
	return nil
}

func checkHeapRefcounts() error {
	heap := core.NewHeap(resource.Unbounded{})
	id, rerr := heap.AllocList(nil)
	if rerr != nil {
		return rerr
	}
	before := heap.LiveCount()
	heap.Retain(id)
	heap.Release(id)
	heap.Release(id)
	after := heap.LiveCount()
	if after != before-1 {
		return fmt.Errorf("expected live count to drop by 1 after matched retain/release pair, got %d -> %d", before, after)
	}
	return nil
}

func checkDictOrder() error {
	heap := core.NewHeap(resource.Unbounded{})
	in := intern.New()
	dictID, rerr := heap.AllocDict()
	if rerr != nil {
		return rerr
	}
	d := heap.Get(dictID).Dict
	keys := []string{"z", "a", "m"}
	for _, k := range keys {
		core.DictSet(d, core.MakeInternString(in.Intern(k)), core.MakeInt(1), heap, in)
	}
	order := core.DictKeysInOrder(d)
	for i, k := range keys {
		s, _ := in.GetStr(order[i].Str)
		if s != k {
			return fmt.Errorf("dict did not preserve insertion order: want %q at position %d, got %q", k, i, s)
		}
	}
	return nil
}

func checkExceptionSubclassing() error {
	if !core.ExcKeyError.IsSubclassOf(core.ExcLookupError) {
		return fmt.Errorf("KeyError should be a subclass of LookupError")
	}
	if core.ExcKeyboardInterrupt.IsSubclassOf(core.ExcException) {
		return fmt.Errorf("KeyboardInterrupt should not be a subclass of Exception")
	}
	return nil
}

func checkMRODiamond() error {
	heap := core.NewHeap(resource.Unbounded{})
	in := intern.New()
	object, rerr := heap.AllocClass(core.ClassData{QualName: in.Intern("object")})
	if rerr != nil {
		return rerr
	}
	a, rerr := heap.AllocClass(core.ClassData{QualName: in.Intern("A"), Bases: []core.HeapID{object}, MRO: []core.HeapID{}})
	if rerr != nil {
		return rerr
	}
	heap.Get(a).Class.MRO = []core.HeapID{a, object}

	b, rerr := heap.AllocClass(core.ClassData{QualName: in.Intern("B"), Bases: []core.HeapID{a}})
	if rerr != nil {
		return rerr
	}
	heap.Get(b).Class.MRO = []core.HeapID{b, a, object}

	c, rerr := heap.AllocClass(core.ClassData{QualName: in.Intern("C"), Bases: []core.HeapID{a}})
	if rerr != nil {
		return rerr
	}
	heap.Get(c).Class.MRO = []core.HeapID{c, a, object}

	d, rerr := heap.AllocClass(core.ClassData{QualName: in.Intern("D"), Bases: []core.HeapID{b, c}})
	if rerr != nil {
		return rerr
	}

	mro, runErr := core.LinearizeMRO(d, [][]core.HeapID{heap.Get(b).Class.MRO, heap.Get(c).Class.MRO}, []core.HeapID{b, c})
	if runErr != nil {
		return runErr
	}
	want := []core.HeapID{d, b, c, a, object}
	if len(mro) != len(want) {
		return fmt.Errorf("expected MRO of length %d, got %d", len(want), len(mro))
	}
	for i := range want {
		if mro[i] != want[i] {
			return fmt.Errorf("MRO mismatch at position %d", i)
		}
	}
	return nil
}

func checkSnapshotRoundTrip() error {
	heap := core.NewHeap(resource.Unbounded{})
	in := intern.New()
	listID, rerr := heap.AllocList([]core.Value{core.MakeInt(1), core.MakeInt(2)})
	if rerr != nil {
		return rerr
	}
	_ = listID
	s := in.Intern("round-trip-me")

	data, err := snapshot.EncodeBytes(in, heap, nil)
	if err != nil {
		return err
	}
	restoredInterns, restoredHeap, _, err := snapshot.DecodeBytes(data, resource.Unbounded{})
	if err != nil {
		return err
	}
	if restoredHeap.LiveCount() != heap.LiveCount() {
		return fmt.Errorf("live heap count changed across snapshot round-trip")
	}
	got, ok := restoredInterns.GetStr(s)
	if !ok || got != "round-trip-me" {
		return fmt.Errorf("interned string did not survive snapshot round-trip")
	}
	return nil
}
