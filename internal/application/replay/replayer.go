package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/playscene/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Keys:       fi.K,
		MouseX:     fi.MX,
		MouseY:     fi.MY,
		MouseDown:  fi.MD,
		MouseClick: fi.MC,
		Axis:       fi.AX,
	}, true
}

// Source adapts the replayer to an input system source.
// Once the recording is exhausted it yields empty snapshots.
func (r *Replayer) Source() system.Source {
	return func() system.InputState {
		in, _ := r.Next()
		return in
	}
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Scene returns the scene name the recording started in
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (mouse parked, no keys)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Scene:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
