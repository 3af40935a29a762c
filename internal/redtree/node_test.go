package redtree

import (
	"testing"

	"github.com/pogor-dev/trustpdf/internal/green"
	"github.com/pogor-dev/trustpdf/internal/green/builder"
)

const (
	kindOuter green.Kind = 5
	kindInner green.Kind = 6
	kindT     green.Kind = 7
)

// buildS4Shape reconstructs SPEC_FULL.md's S4 nested-nodes shape:
// Outer[Inner[Token "a"], Token "b"].
func buildS4Shape() green.Node {
	b := builder.New()
	b.StartNode(kindOuter)
	b.StartNode(kindInner)
	b.Token(kindT, []byte("a"))
	b.FinishNode()
	b.Token(kindT, []byte("b"))
	b.FinishNode()
	root, _ := b.Finish()
	return root
}

func TestS9PositionedViewAgreement(t *testing.T) {
	t.Parallel()

	g := buildS4Shape()
	root := Root(g)

	if root.Offset() != 0 {
		t.Fatalf("root Offset() = %d, want 0", root.Offset())
	}
	if root.Parent() != nil {
		t.Fatal("root Parent() should be nil")
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("root Children() = %d, want 2", len(children))
	}

	innerChild := children[0]
	if innerChild.Node == nil {
		t.Fatal("first child should be a positioned node, not a leaf")
	}
	wantInnerOffset := g.Slot(0).RelativeOffset
	if innerChild.Offset != wantInnerOffset {
		t.Fatalf("Inner child Offset = %d, want %d (its green RelativeOffset)", innerChild.Offset, wantInnerOffset)
	}
	if innerChild.Node.Parent() != root {
		t.Fatal("Inner child's Parent() should be the root cursor")
	}
	if innerChild.Node.Kind() != kindInner {
		t.Fatalf("Inner child Kind() = %v, want %v", innerChild.Node.Kind(), kindInner)
	}

	innerGrandchildren := innerChild.Node.Children()
	if len(innerGrandchildren) != 1 {
		t.Fatalf("Inner Children() = %d, want 1", len(innerGrandchildren))
	}
	tokenLeaf := innerGrandchildren[0]
	if tokenLeaf.Node != nil {
		t.Fatal("token slot should be a leaf, not a positioned node")
	}
	innerGreen, _ := g.Slot(0).Element.AsNode()
	wantTokenOffset := innerChild.Offset + innerGreen.Slot(0).RelativeOffset
	if tokenLeaf.Offset != wantTokenOffset {
		t.Fatalf("token 'a' absolute Offset = %d, want %d", tokenLeaf.Offset, wantTokenOffset)
	}

	bLeaf := children[1]
	if bLeaf.Node != nil {
		t.Fatal("second root child ('b' token) should be a leaf")
	}
	wantBOffset := g.Slot(1).RelativeOffset
	if bLeaf.Offset != wantBOffset {
		t.Fatalf("token 'b' Offset = %d, want %d", bLeaf.Offset, wantBOffset)
	}

	if got, want := string(root.Text()), "ab"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}
