package main

import "context"
import "fmt"
import "os"
import "os/signal"
import "syscall"

import "github.com/sirgallo/logger"
import "github.com/urfave/cli/v2"

import "github.com/sirgallo/mmh3/common/config"


var cLog = logger.NewCustomLog("mmh3")


func main() {
	runErr := run(os.Args)
	if runErr != nil {
		cLog.Error(runErr.Error())
		os.Exit(1)
	}
}

// run
//	Execute the application until it finishes or an interrupt cancels its context.
func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newApp().RunContext(ctx, args)
}

// newApp
//	Build the command line application. Every global flag overrides the matching config file field.
func newApp() *cli.App {
	return &cli.App{
		Name: "mmh3",
		Usage: "MurmurHash3 digests of files, streams and strings",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "config",
				Aliases: []string{ "c" },
				Usage: "Config file path",
				Value: config.DefaultPath,
			},
			&cli.StringFlag{
				Name: "variant",
				Aliases: []string{ "v" },
				Usage: "Algorithm: 32, x86_128 or x64_128",
			},
			&cli.Int64Flag{
				Name: "seed",
				Aliases: []string{ "s" },
				Usage: "Seed, 0 to 4294967295",
			},
			&cli.StringFlag{
				Name: "format",
				Aliases: []string{ "f" },
				Usage: "Output: hex, bytes, unsigned, signed, tuple_unsigned or tuple_signed",
			},
			&cli.IntFlag{
				Name: "workers",
				Aliases: []string{ "w" },
				Usage: "Files hashed at once (0 = GOMAXPROCS)",
			},
			&cli.StringSliceFlag{
				Name: "include",
				Usage: "Glob patterns selecting files inside directory arguments (e.g. --include '**/*.bin')",
			},
		},
		Commands: []*cli.Command{
			{
				Name: "sum",
				Usage: "Hash files, directories or stdin (no argument or -)",
				ArgsUsage: "[path...]",
				Action: sumAction,
			},
			{
				Name: "string",
				Usage: "Hash each argument as UTF-8 text",
				ArgsUsage: "text...",
				Action: stringAction,
			},
			{
				Name: "watch",
				Usage: "Print a new digest every time a watched file changes",
				ArgsUsage: "path...",
				Action: watchAction,
			},
		},
	}
}

// loadSettings
//	Load the config file then apply flag overrides, validating the result.
func loadSettings(c *cli.Context) (*config.Settings, error) {
	cfg, loadErr := config.Load(c.String("config"))
	if loadErr != nil { return nil, fmt.Errorf("failed to load config: %w", loadErr) }

	if c.IsSet("variant") { cfg.Variant = c.String("variant") }
	if c.IsSet("seed") { cfg.Seed = c.Int64("seed") }
	if c.IsSet("format") { cfg.Format = c.String("format") }
	if c.IsSet("workers") { cfg.Workers = c.Int("workers") }
	if includes := c.StringSlice("include"); len(includes) > 0 { cfg.Include = includes }

	return cfg.Validate()
}
