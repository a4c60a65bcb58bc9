package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/euclase/hyperray/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	renderFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 512,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 512,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 0,
			Usage: "samples per pixel per frame; 0 uses the scene camera setting",
		},
		cli.IntFlag{
			Name:  "num-bounces",
			Value: 0,
			Usage: "max path bounces; 0 uses the scene camera setting",
		},
		cli.IntFlag{
			Name:  "seed",
			Value: 1,
			Usage: "base seed for per-pixel random generators",
		},
		cli.IntFlag{
			Name:  "num-tracers",
			Value: 1,
			Usage: "number of cpu tracers to attach",
		},
		cli.IntFlag{
			Name:  "num-workers",
			Value: 0,
			Usage: "worker goroutines per tracer; 0 uses one per logical CPU",
		},
	}

	app := cli.NewApp()
	app.Name = "hyperray"
	app.Usage = "render 4d scenes using path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "scene",
			Usage: "create and inspect scene descriptions",
			Subcommands: []cli.Command{
				{
					Name:  "init",
					Usage: "write a starter scene description",
					Description: `
Write a small editable JSON scene to the given path (scene.json when no
path is given): one hypersphere resting on a ground hyperplane.`,
					ArgsUsage: "[scene.json]",
					Action:    cmd.InitScene,
				},
				{
					Name:      "info",
					Usage:     "display scene element counts and camera settings",
					ArgsUsage: "scene.json",
					Action:    cmd.ShowSceneInfo,
				},
			},
		},
		{
			Name:   "list-tracers",
			Usage:  "list available tracers",
			Action: cmd.ListTracers,
		},
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render single frame",
					Description: `Render a single frame and export it as a PNG image.`,
					ArgsUsage:   "scene.json",
					Flags: append(renderFlags,
						cli.IntFlag{
							Name:  "frames",
							Value: 1,
							Usage: "number of frames to accumulate before export",
						},
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					),
					Action: cmd.RenderFrame,
				},
				{
					Name:        "interactive",
					Usage:       "render interactive view of the scene",
					Description: `Open a window that accumulates the frame progressively while the camera is driven with the keyboard and mouse.`,
					ArgsUsage:   "scene.json",
					Flags: append(renderFlags,
						cli.IntFlag{
							Name:  "frames",
							Value: 0,
							Usage: "stop accumulating after this many frames; 0 accumulates forever",
						},
					),
					Action: cmd.RenderInteractive,
				},
			},
		},
	}

	app.Run(os.Args)
}
