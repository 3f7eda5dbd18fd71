// Package debugui renders Dear ImGui inspection panels for a running puzzle engine.
// Panels are plain values rendered once per frame by an Overlay; the host
// frontend owns the ImGui backend and frames.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Panel draws one ImGui window.
type Panel interface {
	Render()
}

// PanelFunc adapts a function to a Panel.
type PanelFunc func()

func (f PanelFunc) Render() { f() }

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders its panels while visible and records whether ImGui wants
// the input for the current frame.
type Overlay struct {
	panels  []Panel
	visible bool
	input   InputState
}

func NewOverlay(panels ...Panel) *Overlay {
	return &Overlay{panels: panels}
}

// Add appends a panel to the render list.
func (o *Overlay) Add(p Panel) {
	o.panels = append(o.panels, p)
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

func (o *Overlay) Visible() bool {
	return o.visible
}

// Input returns the capture state from the last Render. A hidden overlay
// never captures input.
func (o *Overlay) Input() InputState {
	return o.input
}

// Render must be called between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	if !o.visible {
		o.input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, p := range o.panels {
		p.Render()
	}
}
