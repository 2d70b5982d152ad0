package main

import (
	"os"
	"time"

	"github.com/woozymasta/terraformer/internal/config"
	"github.com/woozymasta/terraformer/internal/logger"
	"github.com/woozymasta/terraformer/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file"`
	Output     string        `short:"o" long:"out"       description:"Output file path. Writes to stdout if empty"`
	Format     string        `short:"f" long:"format"    description:"Output format" choice:"json" choice:"yaml"`
	Minify     bool          `short:"m" long:"minify"    description:"Minify JSON output"`
	Precision  int           `short:"p" long:"precision" description:"Significant digits kept when minifying (0 keeps all)"`
	Timeout    time.Duration `long:"timeout"             env:"FETCH_TIMEOUT" description:"Timeout for remote documents" default:"15s"`
}

// app is shared by the commands once the global options are parsed.
type app struct {
	cfg *config.Config
	out processor.Output
}

var (
	opts Options
	env  app
)

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.LongDescription = "Bounding boxes, Web Mercator projection and circles for GeoJSON documents."

	addCommands(parser)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		if command == nil {
			return nil
		}

		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}

		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// setup configures logging and merges the config file with the flags.
func setup() error {
	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Debug().Str("path", opts.ConfigFile).Msg("Configuration loaded")
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Minify {
		cfg.Minify = true
	}

	env.cfg = cfg
	env.out = processor.OutputFromConfig(cfg)
	env.out.Precision = opts.Precision

	return nil
}
