package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"texgen/config"
	"texgen/generate"
)

type appEnv struct {
	cfg *config.Config
	log *zap.Logger
}

type envKeyType int

const envKey envKeyType = 0

func envFromContext(ctx context.Context) *appEnv {
	if env, ok := ctx.Value(envKey).(*appEnv); ok {
		return env
	}
	panic("no application environment in context")
}

// initializeAppContext prepares application context before command execution
// but after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := envFromContext(ctx)

	configFile := cmd.String("config")
	if env.cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.cfg.Logging.Console.Level = "debug"
	}
	if env.log, err = env.cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}

	env.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))

	if len(configFile) == 0 {
		env.log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if env.log != nil {
		env.log.Debug("Program ended", zap.Strings("parsed args", cmd.Args().Slice()))
		_ = env.log.Sync()
	}
	return nil
}

// Ignore urfave/cli default error handling - cli.Exit() looks non-transparent
// and unnesessary. Subcommands return regular errors.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := envFromContext(ctx)
	if env.log != nil {
		env.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {

	ctx, stop := signal.NotifyContext(
		context.WithValue(context.Background(), envKey, &appEnv{}),
		os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "texgen",
		Usage:           "structured document builder with LaTeX output",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose output to help troubleshooting"},
		},
		Commands: []*cli.Command{
			{
				Name:         "sample",
				Usage:        "Builds and compiles a small demonstration document",
				OnUsageError: usageErrorHandler,
				Action:       runSample,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "font-url", Usage: "download font from `URL` into the configured fonts directory and use it"},
				},
				ArgsUsage: " ",
			},
			{
				Name:         "dump-config",
				Usage:        "Dumps either default or actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default built-in configuration"},
				},
				ArgsUsage: "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s
DESTINATION:
    file name to write configuration to, if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func runSample(ctx context.Context, cmd *cli.Command) error {

	env := envFromContext(ctx)
	g := generate.NewGenerator(env.cfg, env.log)

	doc, err := g.SampleDocument(cmd.String("font-url"))
	if err != nil {
		return fmt.Errorf("unable to build sample document: %w", err)
	}

	pdf, err := g.Generate(ctx, doc)
	if err != nil {
		return err
	}
	env.log.Info("Sample ready", zap.String("pdf", pdf))
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Dump(config.Default())
	} else {
		state = "actual"
		data, err = config.Dump(env.cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
