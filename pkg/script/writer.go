package script

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/OpenTraceLab/prepack/pkg/clock"
)

// Writer is a clock.Context that emits one ctx.addClock line per call.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Comment writes a '#' comment line.
func (sw *Writer) Comment(format string, args ...any) {
	sw.printf("# "+format+"\n", args...)
}

// AddClock implements clock.Context.
func (sw *Writer) AddClock(name string, frequencyMHz int) {
	sw.printf("ctx.addClock(%s, %d)\n", strconv.Quote(name), frequencyMHz)
}

// Err returns the first write error, if any.
func (sw *Writer) Err() error {
	return sw.err
}

func (sw *Writer) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

// Render produces a complete pre-pack script for device.
func Render(device, pllPath string, domains []clock.Domain) []byte {
	var buf bytes.Buffer
	sw := NewWriter(&buf)
	sw.Comment("Generated by prepack. Do not edit.")
	sw.Comment("device: %s", device)
	sw.Comment("pll file: %s", pllPath)
	sw.printf("\n")
	for _, d := range domains {
		if d.Name == clock.DomainSignal {
			sw.Comment("signal clocks are constrained to %d MHz for tighter packing", clock.SignalMHz)
		}
		sw.AddClock(d.Name, d.FrequencyMHz)
	}
	return buf.Bytes()
}
