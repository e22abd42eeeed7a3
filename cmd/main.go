package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/docpipe/docpipe"
	"github.com/docpipe/docpipe/internal/utils"
)

func main() {
	app := &cli.App{
		Name:  "docpipe",
		Usage: "Convert documents (PDF, DOCX, HTML, XLSX, CSV, PPTX, ZIP, ...) to Markdown",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file or directory",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Force a format extension (e.g. .csv), overriding detection",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "Source URL hint for already-fetched page content",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "File name hint used for format detection",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose output",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("no input files specified")
			}

			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger().Level(zerolog.InfoLevel)
			if c.Bool("verbose") {
				log = log.Level(zerolog.DebugLevel)
			}

			opts := docpipe.Options{
				ForceExtension: c.String("format"),
				FileName:       c.String("name"),
				SourceURL:      c.String("url"),
				Logger:         &log,
			}

			// Process each input file
			for _, inputPath := range c.Args().Slice() {
				if err := convertFile(inputPath, c.String("output"), opts, log); err != nil {
					return fmt.Errorf("failed to convert %s: %w", inputPath, err)
				}
			}

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func convertFile(inputPath, outputOption string, opts docpipe.Options, log zerolog.Logger) error {
	log.Debug().Str("input", inputPath).Msg("processing")

	markdown, err := docpipe.ConvertToMarkdown(docpipe.FromString(inputPath), opts)
	if err != nil {
		return err
	}

	// Determine output path
	outputPath, err := utils.GetOutputPath(inputPath, outputOption)
	if err != nil {
		return fmt.Errorf("failed to determine output path: %w", err)
	}

	if err := utils.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(markdown+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info().Str("input", inputPath).Str("output", outputPath).Msg("converted")
	return nil
}
