package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/numbfs/numbfs/pkg/numbfs"
	"github.com/numbfs/numbfs/pkg/report"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:      appName,
		Usage:     "inspect and verify a numbfs image",
		ArgsUsage: "TARGET",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "inodes",
				Aliases: []string{"i"},
				Usage:   "display inode usage (verified against the inode bitmap)",
			},
			&cli.BoolFlag{
				Name:    "blocks",
				Aliases: []string{"b"},
				Usage:   "display block usage (verified against the block bitmap)",
			},
			&cli.IntFlag{
				Name:  "nid",
				Usage: "display the inode information of inode@nid",
				Value: -1,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: text, json, or yaml",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: config.SlogLevel()},
	))

	formatName := config.Format
	if ctx.IsSet("format") {
		formatName = ctx.String("format")
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if ctx.NArg() < 1 {
		return fmt.Errorf("missing block device or image path")
	}
	target := ctx.Args().First()

	volume, err := numbfs.OpenFileVolume(target)
	if err != nil {
		return err
	}
	defer volume.Close()

	logger.Debug("loading superblock", "target", target)
	fs, err := numbfs.Load(volume)
	if err != nil {
		return err
	}
	logger.Debug(
		"superblock loaded",
		"totalInodes", fs.Superblock.TotalInodes,
		"dataBlocks", fs.Superblock.DataBlocks,
	)

	out, err := report.Build(fs, &report.Params{
		ShowInodes: ctx.Bool("inodes"),
		ShowBlocks: ctx.Bool("blocks"),
		Nid:        ctx.Int("nid"),
	})
	if err != nil {
		return err
	}

	return out.Render(os.Stdout, format)
}
