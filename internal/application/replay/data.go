package replay

import "github.com/hajimehoshi/ebiten/v2"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int          `json:"f"`            // Frame number
	K  []ebiten.Key `json:"k,omitempty"`  // Held keys
	MX int          `json:"mx"`           // MouseX
	MY int          `json:"my"`           // MouseY
	MD bool         `json:"md,omitempty"` // MouseDown
	MC bool         `json:"mc,omitempty"` // MouseClick
	AX float64      `json:"ax,omitempty"` // Gamepad axis
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
