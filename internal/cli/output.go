package cli

import (
	"fmt"
	"io"

	"github.com/ambidate/ambidate/internal/infer"
	"github.com/fatih/color"
)

var reliabilityColors = map[infer.Reliability]*color.Color{
	infer.ReliabilityUnambiguous:           color.New(color.FgGreen),
	infer.ReliabilityResolvedUnambiguously: color.New(color.FgCyan),
	infer.ReliabilityResolvedAmbiguously:   color.New(color.FgYellow),
	infer.ReliabilityInvalid:               color.New(color.FgRed),
}

// writeText renders one aligned line per input for human consumption.
func writeText(w io.Writer, inputs []string, results []infer.ParsedDate) {
	width := 0
	for _, in := range inputs {
		if len(in) > width {
			width = len(in)
		}
	}
	for i, d := range results {
		tag := reliabilityColors[d.Reliability].Sprint(d.Reliability.String())
		if d.Reliability == infer.ReliabilityInvalid {
			fmt.Fprintf(w, "%-*s  %s\n", width, inputs[i], tag)
			continue
		}
		fmt.Fprintf(w, "%-*s  %s  day=%d month=%d year=%d\n",
			width, inputs[i], tag, d.Day, d.Month, d.Year)
	}
}
