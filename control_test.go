package gui

import (
	"strings"
	"testing"
)

func TestControl_SetBounds(t *testing.T) {
	type tc struct {
		initial     Bounds
		set         Bounds
		sizing      func(*SizingEvent)
		wantBounds  Bounds
		wantSizing  int
		wantChanged int
	}

	tests := map[string]tc{
		"commits new bounds": {
			set:         NewBounds(0, 0, 10, 20),
			wantBounds:  NewBounds(0, 0, 10, 20),
			wantSizing:  1,
			wantChanged: 1,
		},
		"unchanged bounds is a no-op": {
			initial:     NewBounds(1, 2, 3, 4),
			set:         NewBounds(1, 2, 3, 4),
			wantBounds:  NewBounds(1, 2, 3, 4),
			wantSizing:  0,
			wantChanged: 0,
		},
		"sizing handler adjusts proposal": {
			set: NewBounds(0, 0, 10, 20),
			sizing: func(e *SizingEvent) {
				e.Proposed.To.X = 5
			},
			wantBounds:  NewBounds(0, 0, 5, 20),
			wantSizing:  1,
			wantChanged: 1,
		},
		"sizing handler vetoes": {
			initial: NewBounds(0, 0, 1, 1),
			set:     NewBounds(0, 0, 10, 20),
			sizing: func(e *SizingEvent) {
				e.Cancel = true
			},
			wantBounds:  NewBounds(0, 0, 1, 1),
			wantSizing:  1,
			wantChanged: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewControl(WithBounds(tt.initial))
			sizing, changed := 0, 0
			var last Bounds
			c.Sizing.Subscribe(func(e *SizingEvent) {
				sizing++
				if e.Current != tt.initial {
					t.Errorf("Current = %s, want %s", e.Current, tt.initial)
				}
				if tt.sizing != nil {
					tt.sizing(e)
				}
			})
			c.SizeChanged.Subscribe(func(e SizeEvent) {
				changed++
				last = e.Bounds
			})

			c.SetBounds(tt.set)

			if got := c.Bounds(); got != tt.wantBounds {
				t.Errorf("Bounds() = %s, want %s", got, tt.wantBounds)
			}
			if sizing != tt.wantSizing {
				t.Errorf("sizing emitted %d times, want %d", sizing, tt.wantSizing)
			}
			if changed != tt.wantChanged {
				t.Errorf("size changed emitted %d times, want %d", changed, tt.wantChanged)
			}
			if changed > 0 && last != tt.wantBounds {
				t.Errorf("SizeChanged bounds = %s, want %s", last, tt.wantBounds)
			}
		})
	}
}

func TestControl_SetParent(t *testing.T) {
	a := NewControl(WithName("a"))
	b := NewControl(WithName("b"))
	child := NewControl(WithName("child"))

	var events []ParentChangedEvent
	child.ParentChanged.Subscribe(func(e ParentChangedEvent) {
		events = append(events, e)
	})

	child.SetParent(a)
	child.SetParent(a)
	child.SetParent(b)

	if len(events) != 2 {
		t.Fatalf("ParentChanged emitted %d times, want 2", len(events))
	}
	if events[0].Old != nil || events[0].New != a {
		t.Errorf("first event = %v -> %v, want <nil> -> a", events[0].Old, events[0].New)
	}
	if events[1].Old != a || events[1].New != b {
		t.Errorf("second event = %v -> %v, want a -> b", events[1].Old, events[1].New)
	}
	if len(a.Children()) != 0 {
		t.Errorf("a has %d children, want 0", len(a.Children()))
	}
	if len(b.Children()) != 1 || b.Children()[0] != child {
		t.Errorf("b.Children() = %v, want [child]", b.Children())
	}
	if child.Parent() != b {
		t.Errorf("Parent() = %v, want b", child.Parent())
	}
}

func TestControl_SetParentCyclePanics(t *testing.T) {
	root := NewControl()
	mid := NewControl()
	leaf := NewControl()
	root.AddChild(mid)
	mid.AddChild(leaf)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when parenting root under its descendant")
		}
	}()
	root.SetParent(leaf)
}

func TestControl_RemoveChild(t *testing.T) {
	type tc struct {
		setup func(parent, child *Control)
		want  bool
	}

	tests := map[string]tc{
		"removes attached child": {
			setup: func(parent, child *Control) { parent.AddChild(child) },
			want:  true,
		},
		"ignores foreign child": {
			setup: func(parent, child *Control) { NewControl().AddChild(child) },
			want:  false,
		},
		"ignores detached child": {
			setup: func(parent, child *Control) {},
			want:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent, child := NewControl(), NewControl()
			tt.setup(parent, child)
			if got := parent.RemoveChild(child); got != tt.want {
				t.Errorf("RemoveChild() = %v, want %v", got, tt.want)
			}
			if len(parent.Children()) != 0 {
				t.Errorf("parent has %d children, want 0", len(parent.Children()))
			}
		})
	}
}

func TestControl_Terminate(t *testing.T) {
	root := NewControl(WithName("root"))
	kids := []*Control{NewControl(), NewControl(), NewControl()}
	for _, k := range kids {
		root.AddChild(k)
	}
	grandchild := NewControl()
	kids[0].AddChild(grandchild)

	var order []*Control
	record := func(c *Control) { order = append(order, c) }
	root.Terminating.Subscribe(record)
	kids[0].Terminating.Subscribe(record)
	grandchild.Terminating.Subscribe(record)

	root.Terminate()
	root.Terminate()

	want := []*Control{root, kids[0], grandchild}
	if len(order) != len(want) {
		t.Fatalf("terminating order has %d entries, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, order[i], want[i])
		}
	}
	for i, k := range kids {
		if !k.IsTerminated() {
			t.Errorf("kids[%d] not terminated", i)
		}
		if k.Parent() != nil {
			t.Errorf("kids[%d] still has a parent", i)
		}
	}
	if len(root.Children()) != 0 {
		t.Errorf("root has %d children, want 0", len(root.Children()))
	}

	before := root.Bounds()
	root.SetBounds(NewBounds(0, 0, 5, 5))
	if root.Bounds() != before {
		t.Errorf("terminated control accepted bounds %s", root.Bounds())
	}
	if root.Sizing.Len() != 0 || root.SizeChanged.Len() != 0 || root.Terminating.Len() != 0 {
		t.Error("terminated control still has subscribers")
	}
}

func TestControl_TerminatedParentRejectsChildren(t *testing.T) {
	p := NewControl()
	p.Terminate()
	c := NewControl()
	c.SetParent(p)
	if c.Parent() != nil {
		t.Errorf("Parent() = %v, want nil", c.Parent())
	}
}

func TestControl_WalkAndFind(t *testing.T) {
	root := NewControl(WithName("root"), WithChildren(
		NewControl(WithName("a"), WithChildren(NewControl(WithName("a1")))),
		NewControl(WithName("b")),
	))

	var names []string
	root.Walk(func(c *Control, depth int) bool {
		names = append(names, strings.Repeat("-", depth)+c.Name())
		return true
	})
	if got, want := strings.Join(names, ","), "root,-a,--a1,-b"; got != want {
		t.Errorf("Walk order = %q, want %q", got, want)
	}

	names = nil
	root.Walk(func(c *Control, depth int) bool {
		names = append(names, c.Name())
		return c.Name() != "a"
	})
	if got, want := strings.Join(names, ","), "root,a,b"; got != want {
		t.Errorf("pruned Walk order = %q, want %q", got, want)
	}

	if got := root.Find("a1"); got == nil || got.Name() != "a1" {
		t.Errorf("Find(a1) = %v", got)
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
	if got := root.Find("a1").Root(); got != root {
		t.Errorf("Root() = %v, want root", got)
	}
}

func TestControl_String(t *testing.T) {
	c := NewControl(WithName("panel"), WithBounds(NewBounds(1, 2, 3, 4)))
	if got, want := c.String(), "panel(1, 2 -> 3, 4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	var nilControl *Control
	if got := nilControl.String(); got != "<nil>" {
		t.Errorf("nil String() = %q", got)
	}
}
