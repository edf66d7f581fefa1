package recommendation

import (
	"sort"

	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
)

// NextModule selects the next module to work on: the lowest-order entry not
// yet completed whose prerequisites are all completed. Ties on order resolve
// in sequence-list order. A nil result means nothing is currently available,
// which callers treat as "done or blocked", not an error.
func NextModule(seq []curriculum.ModuleSequence, completed []string) *curriculum.ModuleSequence {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	ordered := make([]curriculum.ModuleSequence, len(seq))
	copy(ordered, seq)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	for _, entry := range ordered {
		if done[entry.ModuleID] {
			continue
		}
		ready := true
		for _, pre := range entry.Prerequisites {
			if !done[pre] {
				ready = false
				break
			}
		}
		if ready {
			e := entry
			e.Prerequisites = append([]string(nil), entry.Prerequisites...)
			return &e
		}
	}
	return nil
}

// PrerequisiteChain resolves the transitive prerequisites of a module within
// a pathway, de-duplicated, deepest dependency first. An id absent from the
// sequence yields an empty chain.
func PrerequisiteChain(seq []curriculum.ModuleSequence, id string) []string {
	byID := make(map[string]curriculum.ModuleSequence, len(seq))
	for _, entry := range seq {
		byID[entry.ModuleID] = entry
	}

	visited := map[string]bool{}
	var chain []string
	var walk func(moduleID string)
	walk = func(moduleID string) {
		entry, ok := byID[moduleID]
		if !ok {
			return
		}
		for _, pre := range entry.Prerequisites {
			if visited[pre] {
				continue
			}
			visited[pre] = true
			walk(pre)
			chain = append(chain, pre)
		}
	}
	walk(id)
	return chain
}
