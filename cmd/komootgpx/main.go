package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mfkd/komootgpx/config"
	"github.com/mfkd/komootgpx/gpx"
	"github.com/mfkd/komootgpx/komoot"
	"github.com/mfkd/komootgpx/pkg/logger"
)

// Exit codes per failure stage. 64 matches EX_USAGE from sysexits.
const (
	exitOK    = 0
	exitFetch = 1
	exitParse = 2
	exitWrite = 3
	exitUsage = 64
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("komootgpx", flag.ContinueOnError)
	var output string
	fs.StringVar(&output, "o", "", "output GPX file (default: derived from the tour name)")
	fs.StringVar(&output, "output", "", "output GPX file (default: derived from the tour name)")
	timeout := fs.Int("timeout", 0, "HTTP timeout in milliseconds (overrides config)")
	logLevel := fs.String("log-level", "", "log level: trace|debug|info|warn|error (overrides config)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: komootgpx [flags] <tour URL or ID>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return exitUsage
	}
	if *timeout > 0 {
		cfg.Komoot.TimeoutMS = *timeout
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	client := komoot.New(cfg.Komoot)
	tourURL, err := client.ResolveTourURL(fs.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("invalid tour argument")
		return exitUsage
	}

	log.Info().Str("url", tourURL).Msg("fetching tour")
	page, err := client.FetchTourPage(tourURL)
	if err != nil {
		log.Error().Err(err).Msg("fetch failed")
		return exitFetch
	}

	payload, err := komoot.ExtractTourData(page)
	if err != nil {
		log.Error().Err(err).Msg("tour extraction failed")
		return exitParse
	}
	t, err := payload.Tour()
	if err != nil {
		log.Error().Err(err).Msg("tour extraction failed")
		return exitParse
	}
	log.Info().Str("tour", t.Name).Int("points", len(t.Points)).Msg("tour parsed")

	if output == "" {
		output = gpx.DefaultFilename(t)
		if cfg.Output.Dir != "" {
			output = filepath.Join(cfg.Output.Dir, output)
		}
	}
	if err := gpx.WriteFile(t, output); err != nil {
		log.Error().Err(err).Msg("write failed")
		return exitWrite
	}
	log.Info().Str("file", output).Msg("GPX written")
	return exitOK
}
