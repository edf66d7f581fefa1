package recommendation

import (
	"reflect"
	"testing"

	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
)

func TestNextModule_PicksLowestReadyOrder(t *testing.T) {
	seq := []curriculum.ModuleSequence{
		{ModuleID: "UF-2E", Order: 2, Prerequisites: []string{"UF-1E"}},
		{ModuleID: "UF-1E", Order: 1},
		{ModuleID: "RS-1L", Order: 9, Prerequisites: []string{"UF-2E"}},
	}

	got := NextModule(seq, nil)
	if got == nil || got.ModuleID != "UF-1E" {
		t.Fatalf("next = %v, want UF-1E", got)
	}

	got = NextModule(seq, []string{"UF-1E"})
	if got == nil || got.ModuleID != "UF-2E" {
		t.Fatalf("next after UF-1E = %v, want UF-2E", got)
	}

	got = NextModule(seq, []string{"UF-1E", "UF-2E", "RS-1L"})
	if got != nil {
		t.Fatalf("everything completed, next = %v, want nil", got)
	}
}

func TestNextModule_SkipsBlockedEntries(t *testing.T) {
	seq := []curriculum.ModuleSequence{
		{ModuleID: "A", Order: 1, Prerequisites: []string{"MISSING"}},
		{ModuleID: "B", Order: 2},
	}
	got := NextModule(seq, nil)
	if got == nil || got.ModuleID != "B" {
		t.Fatalf("next = %v, want B past the blocked entry", got)
	}
}

func TestNextModule_TieBreaksOnListOrder(t *testing.T) {
	seq := []curriculum.ModuleSequence{
		{ModuleID: "first", Order: 5},
		{ModuleID: "second", Order: 5},
	}
	got := NextModule(seq, nil)
	if got == nil || got.ModuleID != "first" {
		t.Fatalf("equal orders must resolve in list order, got %v", got)
	}
}

func TestNextModule_ReturnsDetachedCopy(t *testing.T) {
	seq := []curriculum.ModuleSequence{
		{ModuleID: "B", Order: 2, Prerequisites: []string{"A"}},
		{ModuleID: "A", Order: 1},
	}
	got := NextModule(seq, []string{"A"})
	if got == nil {
		t.Fatalf("expected B")
	}
	got.Prerequisites[0] = "mutated"
	if seq[0].Prerequisites[0] != "A" {
		t.Fatalf("NextModule aliased the caller's sequence")
	}
}

func TestPrerequisiteChain_Transitive(t *testing.T) {
	seq := []curriculum.ModuleSequence{
		{ModuleID: "UF-1E", Order: 1},
		{ModuleID: "UF-2E", Order: 2, Prerequisites: []string{"UF-1E"}},
		{ModuleID: "RS-1L", Order: 9, Prerequisites: []string{"UF-2E"}},
	}
	got := PrerequisiteChain(seq, "RS-1L")
	want := []string{"UF-1E", "UF-2E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("chain = %v, want %v (deepest first)", got, want)
	}
}

func TestPrerequisiteChain_SharedDependencyOnce(t *testing.T) {
	seq := []curriculum.ModuleSequence{
		{ModuleID: "root"},
		{ModuleID: "left", Prerequisites: []string{"root"}},
		{ModuleID: "right", Prerequisites: []string{"root"}},
		{ModuleID: "top", Prerequisites: []string{"left", "right"}},
	}
	got := PrerequisiteChain(seq, "top")
	want := []string{"root", "left", "right"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("chain = %v, want %v", got, want)
	}
}

func TestPrerequisiteChain_UnknownID(t *testing.T) {
	seq := []curriculum.ModuleSequence{{ModuleID: "UF-1E"}}
	if got := PrerequisiteChain(seq, "ZZ-404"); len(got) != 0 {
		t.Fatalf("unknown id should yield an empty chain, got %v", got)
	}
}
