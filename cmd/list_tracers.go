package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/euclase/hyperray/tracer/cpu"
)

// List the tracers that would be attached for the current machine.
func ListTracers(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("\nSystem provides %d logical CPU(s):\n\n", runtime.NumCPU()))

	tr := cpu.NewTracer("cpu-0", 0)
	defer tr.Close()
	buf.WriteString(fmt.Sprintf("  [Tracer 00]\n    Id    %s\n    Speed %3.1f\n\n", tr.Id(), tr.SpeedEstimate()))

	logger.Notice(buf.String())
	return nil
}
