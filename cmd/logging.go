package cmd

import (
	"github.com/urfave/cli"

	"github.com/euclase/hyperray/log"
)

var logger = log.New("hyperray")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
