package plexus

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Resizer is implemented by viewports whose size can be changed on demand,
// such as RasterSurface. Scripted "resize" steps require it.
type Resizer interface {
	Resize(width, height int)
}

// TestRunner sequences injected pointer moves, resizes and screenshots
// across frames for automated visual testing. Attach to a Driver via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Driver via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "sweep", "wait", "screenshot":
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse test script: step %d: resize needs positive width and height", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the driver. The runner's step
// method is called from Driver.Frame before injected input is processed.
func (d *Driver) SetTestRunner(runner *TestRunner) {
	d.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Driver.Frame.
func (r *TestRunner) step(d *Driver) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		d.Screenshot(st.Label)
	case "move":
		d.InjectMove(st.X, st.Y)
	case "sweep":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		d.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "resize":
		rs, ok := d.viewport.(Resizer)
		if !ok {
			_, _ = fmt.Fprintf(os.Stderr, "[plexus] test runner: viewport %T cannot be resized\n", d.viewport)
			break
		}
		rs.Resize(st.Width, st.Height)
		d.Resize()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(d.injectQueue) == 0 {
		r.done = true
	}
}
