package formtree

// Path is the breadcrumb stack of forms from root down to the currently open
// nested form. Operations clamp to bounds; popping an empty path is a no-op.
type Path struct {
	stack []*FormNode
}

// NewPath returns an empty path positioned at the root collection.
func NewPath() *Path {
	return &Path{}
}

// Enter appends a form to the path.
func (p *Path) Enter(form *FormNode) {
	if p == nil || form == nil {
		return
	}
	p.stack = append(p.stack, form)
}

// Back pops the last entry.
func (p *Path) Back() {
	if p == nil || len(p.stack) == 0 {
		return
	}
	p.stack = p.stack[:len(p.stack)-1]
}

// JumpTo truncates the path so the entry at index becomes the tail. Negative
// indices reset to root; indices past the tail are no-ops.
func (p *Path) JumpTo(index int) {
	if p == nil {
		return
	}
	if index < 0 {
		p.stack = p.stack[:0]
		return
	}
	if index >= len(p.stack) {
		return
	}
	p.stack = p.stack[:index+1]
}

// Reset empties the path.
func (p *Path) Reset() {
	if p == nil {
		return
	}
	p.stack = p.stack[:0]
}

// Tail returns the currently open form, or nil at the root collection.
func (p *Path) Tail() *FormNode {
	if p == nil || len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// Depth returns the number of entries.
func (p *Path) Depth() int {
	if p == nil {
		return 0
	}
	return len(p.stack)
}

// Forms returns a copy of the breadcrumb entries, root first.
func (p *Path) Forms() []*FormNode {
	if p == nil || len(p.stack) == 0 {
		return nil
	}
	return append([]*FormNode(nil), p.stack...)
}

// rewrite re-points any entry still referencing oldKey at the updated node so
// a rename never leaves a stale breadcrumb.
func (p *Path) rewrite(oldKey string, node *FormNode) {
	if p == nil || node == nil {
		return
	}
	for i, entry := range p.stack {
		if entry == nil {
			continue
		}
		if entry == node || entry.Key == oldKey {
			p.stack[i] = node
		}
	}
}

// dropFrom truncates the path before the first entry matching key.
func (p *Path) dropFrom(key string) {
	if p == nil {
		return
	}
	for i, entry := range p.stack {
		if entry != nil && entry.Key == key {
			p.stack = p.stack[:i]
			return
		}
	}
}
