package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/euclase/hyperray/renderer"
	"github.com/euclase/hyperray/scene/reader"
	"github.com/euclase/hyperray/tracer"
	"github.com/euclase/hyperray/tracer/cpu"
)

// Collect renderer options from cli flags.
func parseRenderOptions(ctx *cli.Context) renderer.Options {
	return renderer.Options{
		FrameW:           uint32(ctx.Int("width")),
		FrameH:           uint32(ctx.Int("height")),
		SamplesPerPixel:  uint32(ctx.Int("spp")),
		NumBounces:       uint32(ctx.Int("num-bounces")),
		Seed:             uint32(ctx.Int("seed")),
		AccumulateFrames: uint32(ctx.Int("frames")),
		NumWorkers:       ctx.Int("num-workers"),
		NumTracers:       ctx.Int("num-tracers"),
	}
}

// Create the cpu tracers described by the renderer options.
func makeTracers(opts renderer.Options) []tracer.Tracer {
	numTracers := opts.NumTracers
	if numTracers <= 0 {
		numTracers = 1
	}

	tracers := make([]tracer.Tracer, numTracers)
	for i := range tracers {
		tracers[i] = cpu.NewTracer(fmt.Sprintf("cpu-%d", i), opts.NumWorkers)
	}
	return tracers
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	opts := parseRenderOptions(ctx)
	r, err := renderer.NewDefault(sc, tracer.NaiveScheduler(), makeTracers(opts), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	// Export PNG
	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err = png.Encode(f, r.Frame()); err != nil {
		return fmt.Errorf("error encoding png file: %s", err.Error())
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1e6)

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Use opengl to render a continuously updating view of the renderer's
// frame buffer contents.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	opts := parseRenderOptions(ctx)
	r, err := renderer.NewInteractive(sc, tracer.NewPerfectScheduler(), makeTracers(opts), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Render()
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Primary", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%t", stat.IsPrimary),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
