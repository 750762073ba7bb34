package main

import (
	"log/slog"
	"os"

	"paintbucket/bucket"
	"paintbucket/parallel"

	"github.com/alecthomas/kong"
)

type cli struct {
	LogLevel slog.Level `help:"Log level (debug, info, warn, error)" default:"info"`
	Workers  int        `help:"Number of images processed at once, 0 for one per CPU" default:"0"`

	Fill bucket.FillCmd `cmd:"" help:"Replace the color around a seed pixel in every image of a folder"`
	Mask bucket.MaskCmd `cmd:"" help:"Write a mask of the pixels a fill would replace"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("paintbucket"),
		kong.Description("Tolerant flood fill for folders of images."),
		kong.UsageOnError(),
	)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel})))

	pool := parallel.Start(c.Workers)
	if err := kctx.Run(pool); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
