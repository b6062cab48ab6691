package gui

import "github.com/grindlemire/go-gui/internal/debug"

// Parent returns the parent control, or nil if c is detached.
func (c *Control) Parent() *Control {
	return c.parent
}

// Children returns the child controls in paint order.
func (c *Control) Children() []*Control {
	return c.children
}

// SetParent moves c under p, or detaches it when p is nil. The child leaves
// the old parent's list, joins the end of the new one and ParentChanged is
// emitted on c. Setting the current parent does nothing, and neither does
// attaching to a terminated control.
//
// SetParent panics if p is c or one of its descendants.
func (c *Control) SetParent(p *Control) {
	if c.parent == p || c.terminated {
		return
	}
	if p != nil {
		if p.terminated || p.terminates {
			return
		}
		for a := p; a != nil; a = a.parent {
			if a == c {
				panic("gui: control cannot be its own ancestor")
			}
		}
	}

	old := c.parent
	if old != nil {
		old.detachChild(c)
	}
	c.parent = p
	if p != nil {
		p.children = append(p.children, c)
	}
	debug.Log("control %s: parent %s -> %s", c, old, p)
	c.ParentChanged.Emit(ParentChangedEvent{Sender: c, Old: old, New: p})
}

// AddChild appends children to c, reparenting them if needed.
func (c *Control) AddChild(children ...Widget) {
	for _, w := range children {
		if w == nil {
			continue
		}
		w.Base().SetParent(c)
	}
}

// RemoveChild detaches child from c.
// Returns true if child was found and removed.
func (c *Control) RemoveChild(child Widget) bool {
	if child == nil {
		return false
	}
	b := child.Base()
	if b.parent != c {
		return false
	}
	b.SetParent(nil)
	return b.parent == nil
}

func (c *Control) detachChild(child *Control) {
	for i, x := range c.children {
		if x == child {
			c.children = append(c.children[:i:i], c.children[i+1:]...)
			return
		}
	}
}

// Root walks up to the topmost ancestor.
func (c *Control) Root() *Control {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Walk visits c and its descendants depth first, passing each control's
// depth below c. Returning false from fn skips that control's children.
func (c *Control) Walk(fn func(*Control, int) bool) {
	c.walk(fn, 0)
}

func (c *Control) walk(fn func(*Control, int) bool, depth int) {
	if !fn(c, depth) {
		return
	}
	for _, child := range c.children {
		child.walk(fn, depth+1)
	}
}

// Find returns the first control named name in c's subtree, or nil.
func (c *Control) Find(name string) *Control {
	var found *Control
	c.Walk(func(x *Control, _ int) bool {
		if found != nil {
			return false
		}
		if x.name == name {
			found = x
			return false
		}
		return true
	})
	return found
}
