// Package overlay hosts the debug window drawn over the running scene.
//
// The current scene registers one GuiFunction; while the window is
// visible the manager runs it every frame inside debugui's Update.
package overlay

import (
	"fmt"

	"github.com/ebitengine/debugui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GuiFunction builds the debug window contents for one frame
type GuiFunction func(ctx *debugui.Context)

// WindowManager owns the debugui instance and the active scene's GUI function
type WindowManager struct {
	ui        debugui.DebugUI
	fn        GuiFunction
	visible   bool
	capturing debugui.InputCapturingState
	frames    int
}

// NewWindowManager creates a hidden window manager with no GUI function
func NewWindowManager() *WindowManager {
	return &WindowManager{}
}

// SetGuiFunction replaces the function run each frame; nil clears it
func (m *WindowManager) SetGuiFunction(fn GuiFunction) {
	m.fn = fn
}

// HasGuiFunction reports whether a GUI function is registered
func (m *WindowManager) HasGuiFunction() bool {
	return m.fn != nil
}

// Visible reports whether the debug window is shown
func (m *WindowManager) Visible() bool {
	return m.visible
}

// SetVisible shows or hides the debug window
func (m *WindowManager) SetVisible(v bool) {
	m.visible = v
}

// Toggle flips visibility
func (m *WindowManager) Toggle() {
	m.visible = !m.visible
}

// Active reports whether a window is built and drawn this frame
func (m *WindowManager) Active() bool {
	return m.visible && m.fn != nil
}

// Update builds this frame's window. Nothing is built while hidden.
func (m *WindowManager) Update() error {
	if !m.Active() {
		m.capturing = 0
		return nil
	}

	fn := m.fn
	capturing, err := m.ui.Update(func(ctx *debugui.Context) error {
		fn(ctx)
		return nil
	})
	if err != nil {
		return fmt.Errorf("debug window: %w", err)
	}
	m.capturing = capturing
	m.frames++
	return nil
}

// CapturingInput reports whether the pointer was over or focused on the
// window during the last Update
func (m *WindowManager) CapturingInput() bool {
	return m.capturing != 0
}

// Frames returns how many window frames have been built
func (m *WindowManager) Frames() int {
	return m.frames
}

// Draw renders the last built frame
func (m *WindowManager) Draw(screen *ebiten.Image) {
	if !m.Active() {
		return
	}
	m.ui.Draw(screen)
}
