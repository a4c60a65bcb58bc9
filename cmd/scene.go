package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/euclase/hyperray/scene/reader"
)

// Write a starter scene description that can be edited by hand.
func InitScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneFile := "scene.json"
	if ctx.NArg() > 0 {
		sceneFile = ctx.Args().First()
	}

	if err := reader.WriteDocument(sceneFile, reader.Default()); err != nil {
		return err
	}

	logger.Noticef("wrote starter scene to %s", sceneFile)
	return nil
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sceneFile := ctx.Args().First()
	sc, err := reader.ReadScene(sceneFile)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Element", "Count"})
	table.Append([]string{"Materials", fmt.Sprintf("%d", len(sc.Materials))})
	table.Append([]string{"Hyperspheres", fmt.Sprintf("%d", len(sc.HyperSpheres))})
	table.Append([]string{"Hypercuboids", fmt.Sprintf("%d", len(sc.HyperCuboids))})
	table.Append([]string{"Hyperplanes", fmt.Sprintf("%d", len(sc.HyperPlanes))})
	table.Render()

	cam := sc.Camera
	logger.Noticef("scene %s\n%s", sceneFile, buf.String())
	logger.Noticef("camera at %v, fov %.1f rad, %d bounces, %d samples per pixel",
		cam.Position, cam.FOV, cam.BounceCount, cam.SampleCount)

	return nil
}
