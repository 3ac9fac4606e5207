package rtv

import "testing"

func TestCountLeaf(t *testing.T) {
	leaf := &leafNode[int]{}
	if c := count[int](leaf); c != branchFactor {
		t.Fatalf("expected leaf count %d, got %d", branchFactor, c)
	}
}

func TestCountInternalStopsAtFirstAbsentChild(t *testing.T) {
	in := &internalNode[int]{}
	in.children[0] = &leafNode[int]{}
	in.children[1] = &leafNode[int]{}
	// children[2:] left nil/absent
	if c := count[int](in); c != 2*branchFactor {
		t.Fatalf("expected count %d, got %d", 2*branchFactor, c)
	}
}

func TestNodeSetDoesNotMutateOriginal(t *testing.T) {
	leaf := &leafNode[int]{}
	for i := range leaf.slots {
		leaf.slots[i] = makeSlot(i)
	}

	updated := nodeSet[int](leaf, 0, 5, 999)

	if got := nodeGet[int](leaf, 0, 5); got != 5 {
		t.Fatalf("original leaf should be unchanged, got %d", got)
	}
	if got := nodeGet[int](updated, 0, 5); got != 999 {
		t.Fatalf("updated leaf should reflect new value, got %d", got)
	}
	if got := nodeGet[int](updated, 0, 4); got != 4 {
		t.Fatalf("sibling slot should be untouched, got %d", got)
	}
}

func TestBranchLadderAtZeroShiftReturnsLeaf(t *testing.T) {
	leaf := &leafNode[int]{}
	if n := branchLadder[int](0, leaf); n != node[int](leaf) {
		t.Fatalf("branchLadder at shift 0 should return the leaf itself")
	}
}

func TestBranchLadderBuildsChain(t *testing.T) {
	leaf := &leafNode[int]{}
	n := branchLadder[int](bitsPerLevel, leaf)
	in, ok := n.(*internalNode[int])
	if !ok {
		t.Fatalf("expected an internal node at shift %d", bitsPerLevel)
	}
	if in.children[0] != node[int](leaf) {
		t.Fatalf("expected child 0 to be the leaf")
	}
	for i := 1; i < branchFactor; i++ {
		if in.children[i] != nil {
			t.Fatalf("expected child %d to be absent", i)
		}
	}
}

func TestValidateNodeDetectsKindMismatch(t *testing.T) {
	leaf := &leafNode[int]{}
	if err := validateNode[int](leaf, bitsPerLevel, branchFactor); err == nil {
		t.Fatal("expected an error when a leaf appears above shift 0")
	}
}

func TestValidateNodeAcceptsWellFormedTree(t *testing.T) {
	in := &internalNode[int]{}
	in.children[0] = &leafNode[int]{}
	in.children[1] = &leafNode[int]{}
	if err := validateNode[int](in, bitsPerLevel, 2*branchFactor); err != nil {
		t.Fatalf("expected well-formed tree to validate, got %v", err)
	}
}
