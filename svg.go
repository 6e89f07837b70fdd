package windowbirds

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	svg "github.com/ajstarks/svgo"
)

// Snapshot queues a labeled SVG export of the current frame's render
// commands, written to ScreenshotDir at the end of Draw.
func (s *Scene) Snapshot(label string) {
	s.snapshotQueue = append(s.snapshotQueue, label)
}

// WriteSVG re-renders the current state and writes it to w as an SVG
// document the size of the canvas.
func (s *Scene) WriteSVG(w io.Writer) error {
	return encodeSVG(w, s.layout.Canvas, s.Render())
}

// flushSnapshots writes every queued SVG snapshot. Called at the end of
// Scene.Draw, after the frame's commands have been emitted.
func (s *Scene) flushSnapshots() {
	if len(s.snapshotQueue) == 0 {
		return
	}
	defer func() { s.snapshotQueue = s.snapshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[windowbirds] snapshot: mkdir %s: %v\n", s.ScreenshotDir, err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.snapshotQueue {
		path := capturePath(s.ScreenshotDir, stamp, label, "svg")
		if err := writeSVGFile(path, s.layout.Canvas, s.commands); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[windowbirds] snapshot: %v\n", err)
		}
	}
}

func writeSVGFile(path string, canvas Rect, commands []RenderCommand) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodeSVG(f, canvas, commands); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// errWriter records the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// encodeSVG writes commands as SVG shapes. Coordinates are rounded to whole
// canvas units.
func encodeSVG(w io.Writer, canvas Rect, commands []RenderCommand) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(round(canvas.Width), round(canvas.Height))
	for i := range commands {
		cmd := &commands[i]
		r := cmd.Bounds
		switch cmd.Type {
		case CommandFillRect:
			doc.Rect(round(r.X), round(r.Y), round(r.Width), round(r.Height), fillStyle(cmd.Color))
		case CommandStrokeRect:
			doc.Rect(round(r.X), round(r.Y), round(r.Width), round(r.Height), strokeStyle(cmd.Color, cmd.StrokeWidth))
		case CommandFillCircle:
			doc.Circle(round(r.X+r.Width/2), round(r.Y+r.Height/2), round(r.Width/2), fillStyle(cmd.Color))
		}
	}
	doc.End()
	return ew.err
}

func round(v float64) int {
	return int(math.Round(v))
}

func fillStyle(c Color) string {
	r, g, b, _ := c.bytes()
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", r, g, b)
}

func strokeStyle(c Color, width float64) string {
	r, g, b, _ := c.bytes()
	return fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-width:%g", r, g, b, width)
}
