package core

import (
	"testing"

	"ouros/internal/intern"
)

func TestArgValuesPositionalByShape(t *testing.T) {
	if got := MakeArgsEmpty().Positional(); got != nil {
		t.Fatalf("empty args should have nil positional, got %v", got)
	}
	one := MakeArgsOne(MakeInt(1)).Positional()
	if len(one) != 1 || one[0].Int64 != 1 {
		t.Fatalf("expected [1], got %v", one)
	}
	two := MakeArgsTwo(MakeInt(1), MakeInt(2)).Positional()
	if len(two) != 2 || two[0].Int64 != 1 || two[1].Int64 != 2 {
		t.Fatalf("expected [1 2], got %v", two)
	}
}

func TestArgValuesLen(t *testing.T) {
	cases := []struct {
		args ArgValues
		want int
	}{
		{MakeArgsEmpty(), 0},
		{MakeArgsOne(MakeInt(1)), 1},
		{MakeArgsTwo(MakeInt(1), MakeInt(2)), 2},
		{MakeArgsGeneral([]Value{MakeInt(1), MakeInt(2), MakeInt(3)}, nil), 3},
	}
	for _, c := range cases {
		if got := c.args.Len(); got != c.want {
			t.Fatalf("Len(): want %d, got %d", c.want, got)
		}
	}
}

func TestCheckArityExactCount(t *testing.T) {
	if err := CheckArity("f", MakeArgsOne(MakeInt(1)), 2, 2); err == nil {
		t.Fatalf("expected an arity error for 1 arg when exactly 2 are required")
	}
	if err := CheckArity("f", MakeArgsTwo(MakeInt(1), MakeInt(2)), 2, 2); err != nil {
		t.Fatalf("expected no error for exactly 2 args when 2 are required: %v", err)
	}
}

func TestCheckArityNoArgs(t *testing.T) {
	if err := CheckArity("f", MakeArgsOne(MakeInt(1)), 0, 0); err == nil {
		t.Fatalf("expected a 'takes no arguments' error")
	}
	if err := CheckArity("f", MakeArgsEmpty(), 0, 0); err != nil {
		t.Fatalf("expected no error for zero args against a zero-arity function: %v", err)
	}
}

func TestCheckArityRange(t *testing.T) {
	args := MakeArgsGeneral([]Value{MakeInt(1)}, nil)
	if err := CheckArity("f", args, 2, 3); err == nil {
		t.Fatalf("expected an 'at least' error for too few args")
	}
	tooMany := MakeArgsGeneral([]Value{MakeInt(1), MakeInt(2), MakeInt(3), MakeInt(4)}, nil)
	if err := CheckArity("f", tooMany, 1, 3); err == nil {
		t.Fatalf("expected an 'at most' error for too many args")
	}
}

func TestCheckNoKeywordsNamesOffendingKey(t *testing.T) {
	interns := intern.New()
	badName := interns.Intern("oops")
	args := MakeArgsKwargsOnly([]KwArg{{Name: badName, Val: MakeInt(1)}})
	err := CheckNoKeywords("f", args, interns)
	if err == nil {
		t.Fatalf("expected an error when keywords are passed to a function that takes none")
	}
	if !err.IsCatchableBy(ExcTypeError) {
		t.Fatalf("expected a catchable TypeError, got %v", err)
	}
}

func TestCheckMissingPositionalReportsTrailingNames(t *testing.T) {
	err := CheckMissingPositional("f", []string{"a", "b", "c"}, 1)
	if err == nil {
		t.Fatalf("expected a missing-positional-argument error")
	}
	if CheckMissingPositional("f", []string{"a", "b"}, 2) != nil {
		t.Fatalf("supplying every positional parameter should not be an error")
	}
}
