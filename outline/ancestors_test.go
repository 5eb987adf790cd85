package outline

import (
	"testing"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/counter"
)

type fakeOutlinable struct {
	level int
}

func (f *fakeOutlinable) Location() content.Location { return content.Location{} }

func (f *fakeOutlinable) OutlineLevel() int { return f.level }

func (f *fakeOutlinable) OutlineBody(content.Introspector) (content.Node, error) { return nil, nil }

func (f *fakeOutlinable) OutlineCounter() counter.Key { return counter.KeyHeading }

func (f *fakeOutlinable) OutlineNumbering() *counter.Pattern { return nil }

func levels(a ancestors) []int {
	out := make([]int, len(a))
	for i, anc := range a {
		out[i] = anc.out.OutlineLevel()
	}
	return out
}

func TestAncestors_StrictlyIncreasing(t *testing.T) {
	// every admission over an arbitrary level stream must leave the chain
	// strictly increasing front to back
	streams := [][]int{
		{1, 2, 3, 2, 1, 4, 4, 2, 5},
		{3, 3, 3},
		{5, 4, 3, 2, 1},
		{1, 5, 2, 5, 2, 5},
	}
	for _, stream := range streams {
		var chain ancestors
		for _, level := range stream {
			chain.admit(level)
			ls := levels(chain)
			for i := 1; i < len(ls); i++ {
				if ls[i-1] >= ls[i] {
					t.Fatalf("chain %v not strictly increasing after admit(%d) over %v", ls, level, stream)
				}
			}
			for _, l := range ls {
				if l >= level {
					t.Fatalf("chain %v contains level >= admitted %d", ls, level)
				}
			}
			chain.push(&fakeOutlinable{level: level}, content.Location{})
		}
	}
}

func TestAncestors_EqualLevelsAreSiblings(t *testing.T) {
	var chain ancestors
	chain.push(&fakeOutlinable{level: 2}, content.Location{})

	chain.admit(2)
	if len(chain) != 0 {
		t.Errorf("admit(2) over [2] left chain %v, equal levels must evict", levels(chain))
	}
}

func TestAncestors_DeeperKept(t *testing.T) {
	var chain ancestors
	chain.push(&fakeOutlinable{level: 1}, content.Location{})
	chain.push(&fakeOutlinable{level: 2}, content.Location{})

	chain.admit(3)
	if got := levels(chain); len(got) != 2 {
		t.Errorf("admit(3) over [1 2] = %v, want both kept", got)
	}

	chain.admit(2)
	if got := levels(chain); len(got) != 1 || got[0] != 1 {
		t.Errorf("admit(2) over [1 2] = %v, want [1]", got)
	}
}
