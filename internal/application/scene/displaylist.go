package scene

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/playscene/internal/application/system"
	"github.com/younwookim/playscene/internal/ui"
)

// DisplayList is the ordered set of objects a scene owns.
// Scenes embed it to get child management.
type DisplayList struct {
	children []ui.Object
}

// AddChild appends obj; later children draw on top
func (d *DisplayList) AddChild(obj ui.Object) {
	d.children = append(d.children, obj)
}

// RemoveChild removes obj and reports whether it was present
func (d *DisplayList) RemoveChild(obj ui.Object) bool {
	i := slices.Index(d.children, obj)
	if i < 0 {
		return false
	}
	d.children = slices.Delete(d.children, i, i+1)
	return true
}

// RemoveAllChildren releases every child
func (d *DisplayList) RemoveAllChildren() {
	clear(d.children)
	d.children = nil
}

// Children returns a copy of the child list
func (d *DisplayList) Children() []ui.Object {
	return slices.Clone(d.children)
}

// ChildCount returns the number of children
func (d *DisplayList) ChildCount() int {
	return len(d.children)
}

// UpdateDisplayList updates every active child
func (d *DisplayList) UpdateDisplayList(dt float64) {
	for _, child := range d.Children() {
		if child.Active() {
			child.Update(dt)
		}
	}
}

// DrawDisplayList draws children in insertion order
func (d *DisplayList) DrawDisplayList(screen *ebiten.Image) {
	for _, child := range d.children {
		child.Draw(screen)
	}
}

// DispatchPointer forwards the frame's mouse state to children that take
// pointer input. Listeners may add or remove children while it runs.
func (d *DisplayList) DispatchPointer(in system.InputState) {
	mouse := in.Mouse()
	for _, child := range d.Children() {
		if target, ok := child.(ui.PointerTarget); ok {
			target.HandlePointer(mouse, in.MouseClick)
		}
	}
}
