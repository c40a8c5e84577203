// Command imgconv converts an image between the BMP, JPEG and PPM
// formats, chosen by the file extensions of its two arguments.
//
//	imgconv [-config file] [-quality n] [-v] <in_file> <out_file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fumiama/imgconv"
)

// Exit codes.
const (
	exitOK = iota
	exitUsage
	exitUnknownInput
	exitUnknownOutput
	exitLoad
	exitSave
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("imgconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "YAML configuration file")
	quality := fs.Int("quality", 0, "JPEG quality 1-100 (default from config, else 75)")
	verbose := fs.Bool("v", false, "log progress to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: imgconv [flags] <in_file> <out_file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	logger := log.New(stderr, "imgconv: ", 0)
	cfg, err := loadConfig(*configFile)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quality":
			cfg.JPEGQuality = *quality
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.validate(); err != nil {
		logger.Print(err)
		return exitUsage
	}

	in, out := fs.Arg(0), fs.Arg(1)
	opts := []imgconv.Option{imgconv.WithJPEGQuality(cfg.JPEGQuality)}
	if cfg.Verbose {
		opts = append(opts, imgconv.WithLogger(logger.Printf))
	}
	err = imgconv.Convert(in, out, opts...)
	if err == nil {
		fmt.Fprintln(stdout, "Successfully converted")
		return exitOK
	}

	msg, code := "Conversion failed", exitSave
	var ce *imgconv.ConvertError
	if errors.As(err, &ce) {
		switch ce.Stage {
		case imgconv.StageInputFormat:
			msg, code = "Unknown format of the input file", exitUnknownInput
		case imgconv.StageOutputFormat:
			msg, code = "Unknown format of the output file", exitUnknownOutput
		case imgconv.StageLoad:
			msg, code = "Loading failed", exitLoad
		case imgconv.StageSave:
			msg, code = "Saving failed", exitSave
		}
	}
	fmt.Fprintln(stderr, msg)
	if cfg.Verbose {
		logger.Print(err)
	}
	return code
}
