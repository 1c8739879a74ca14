package formtree

import "testing"

func TestPathBoundsSafety(t *testing.T) {
	p := NewPath()
	p.Back() // no-op on empty

	a := NewFormNode(FormSimple, "A")
	b := NewFormNode(FormGroup, "B")
	c := NewFormNode(FormGroup, "C")
	p.Enter(a)
	p.Enter(b)
	p.Enter(c)

	p.JumpTo(5) // past the tail: no-op
	if p.Depth() != 3 {
		t.Fatalf("jump past tail should be a no-op, depth=%d", p.Depth())
	}

	p.JumpTo(1)
	if p.Depth() != 2 || p.Tail() != b {
		t.Fatalf("jump should truncate to the indexed entry")
	}

	p.JumpTo(-1)
	if p.Depth() != 0 {
		t.Fatalf("negative jump should reset to root")
	}

	p.Enter(a)
	p.Reset()
	if p.Tail() != nil {
		t.Fatalf("reset should empty the path")
	}
}

func TestPathForms(t *testing.T) {
	p := NewPath()
	a := NewFormNode(FormSimple, "A")
	b := NewFormNode(FormGroup, "B")
	p.Enter(a)
	p.Enter(b)

	forms := p.Forms()
	if len(forms) != 2 || forms[0] != a || forms[1] != b {
		t.Fatalf("breadcrumbs should list entries root first")
	}

	forms[0] = nil // mutation must not leak into the path
	if p.Forms()[0] != a {
		t.Fatalf("Forms should return a copy")
	}
}

func TestPathRewrite(t *testing.T) {
	p := NewPath()
	stale := NewFormNode(FormGroup, "Old")
	p.Enter(stale)

	fresh := NewFormNode(FormGroup, "New")
	p.rewrite(stale.Key, fresh)
	if p.Tail() != fresh {
		t.Fatalf("rewrite should re-point stale entries")
	}
}

func TestPathDropFrom(t *testing.T) {
	p := NewPath()
	a := NewFormNode(FormSimple, "A")
	b := NewFormNode(FormGroup, "B")
	c := NewFormNode(FormGroup, "C")
	p.Enter(a)
	p.Enter(b)
	p.Enter(c)

	p.dropFrom(b.Key)
	if p.Depth() != 1 || p.Tail() != a {
		t.Fatalf("dropFrom should truncate before the match")
	}
}
