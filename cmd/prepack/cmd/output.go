package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/prepack/pkg/clock"
)

// ClockReport is the structured form of a set of registrations.
type ClockReport struct {
	Device  string         `json:"device,omitempty" yaml:"device,omitempty"`
	Source  string         `json:"source" yaml:"source"`
	Domains []clock.Domain `json:"domains" yaml:"domains"`
}

func writeReport(w io.Writer, format string, report ClockReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		if report.Device != "" {
			fmt.Fprintf(w, "Device: %s\n", report.Device)
		}
		fmt.Fprintf(w, "Source: %s\n", report.Source)
		fmt.Fprintf(w, "Clock domains (%d):\n", len(report.Domains))
		for _, d := range report.Domains {
			fmt.Fprintf(w, "  %-12s %4d MHz\n", d.Name, d.FrequencyMHz)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
