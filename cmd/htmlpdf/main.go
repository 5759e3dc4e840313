package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"htmlpdf/config"
	"htmlpdf/css"
	"htmlpdf/images"
	"htmlpdf/layout"
	"htmlpdf/misc"
	"htmlpdf/resources"
	"htmlpdf/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 && env.Log != nil {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()
	return nil
}

// Ignore urfave/cli default error handling - for me cli.Exit() looks
// non-transparent and unnesessary. I will return regular errors from
// subcommands.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	pageFlags := []cli.Flag{
		&cli.StringFlag{Name: "page-width", Aliases: []string{"W"}, Value: "210mm", Usage: "page width as a CSS `SIZE` (default is A4)"},
		&cli.StringFlag{Name: "page-height", Aliases: []string{"H"}, Value: "297mm", Usage: "page height as a CSS `SIZE` (default is A4)"},
	}

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "CSS value interpretation and resource acquisition for HTML to PDF conversion",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			{
				Name:         "size",
				Usage:        "Resolves CSS size values to points",
				OnUsageError: usageErrorHandler,
				Action:       resolveSizes,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "relative", Aliases: []string{"r"}, Usage: "relative `BASE` size for em/ex/%/keyword values"},
					&cli.StringFlag{Name: "base", Aliases: []string{"b"}, Usage: "absolute `BASE` size for size keyword tables"},
				},
				ArgsUsage: "VALUE...",
			},
			{
				Name:         "color",
				Usage:        "Resolves CSS color values to hex",
				OnUsageError: usageErrorHandler,
				Action:       resolveColors,
				ArgsUsage:    "VALUE...",
			},
			{
				Name:         "box",
				Usage:        "Maps a 4-value box specification onto a page",
				OnUsageError: usageErrorHandler,
				Action:       resolveBox,
				Flags:        pageFlags,
				ArgsUsage:    "\"X Y WIDTH HEIGHT\"",
			},
			{
				Name:         "position",
				Usage:        "Maps a 2-value position specification onto a page",
				OnUsageError: usageErrorHandler,
				Action:       resolvePosition,
				Flags:        pageFlags,
				ArgsUsage:    "\"X Y\"",
			},
			{
				Name:         "fetch",
				Usage:        "Fetches a resource (file path, file:/http(s): URL or data: URI)",
				OnUsageError: usageErrorHandler,
				Action:       fetchResource,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "base", Usage: "base `PATH` or URL for relative references"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write payload to `FILE` instead of describing the resource"},
				},
				ArgsUsage: "URI",
			},
			{
				Name:         "rasterize",
				Usage:        "Rasterizes an SVG resource into a density-stamped JPEG",
				OnUsageError: usageErrorHandler,
				Action:       rasterizeResource,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "base", Usage: "base `PATH` or URL for relative references"},
					&cli.StringFlag{Name: "width", Usage: "target raster `WIDTH` in pixels"},
					&cli.StringFlag{Name: "height", Usage: "target raster `HEIGHT` in pixels"},
					&cli.StringFlag{Name: "quality", Value: "85", Usage: "JPEG `QUALITY` (1-100)"},
					&cli.StringFlag{Name: "dpi", Value: "150", Usage: "pixel `DENSITY` stamped into the JFIF header"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "write JPEG to `FILE`"},
				},
				ArgsUsage: "URI",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func resolveSizes(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("nothing to resolve")
	}

	cv := css.NewConverter(env.Log)
	var opts css.SizeOpts
	if rel := cmd.String("relative"); len(rel) > 0 {
		opts.Relative = cv.Size(rel)
	}
	if base := cmd.String("base"); len(base) > 0 {
		opts.Base = cv.Size(base)
	}
	for _, arg := range cmd.Args().Slice() {
		fmt.Printf("%s\t%gpt\n", arg, cv.SizeWith(arg, opts))
	}
	return nil
}

func resolveColors(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("nothing to resolve")
	}

	cv := css.NewConverter(env.Log)
	for _, arg := range cmd.Args().Slice() {
		c, ok := cv.ParseColorOK(arg)
		if !ok {
			env.Log.Warn("Unable to resolve color", zap.String("value", arg))
			continue
		}
		fmt.Printf("%s\t%s\n", arg, c.Hex())
	}
	return nil
}

func pageFromFlags(cv *css.Converter, cmd *cli.Command) layout.PageSize {
	return layout.PageSize{W: cv.Size(cmd.String("page-width")), H: cv.Size(cmd.String("page-height"))}
}

func resolveBox(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	cv := css.NewConverter(env.Log)
	rect, err := layout.Box(cv, strings.Join(cmd.Args().Slice(), " "), pageFromFlags(cv, cmd))
	if err != nil {
		return err
	}
	fmt.Printf("x=%g y=%g w=%g h=%g\n", rect.X, rect.Y, rect.W, rect.H)
	return nil
}

func resolvePosition(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	cv := css.NewConverter(env.Log)
	pt, err := layout.Position(cv, strings.Join(cmd.Args().Slice(), " "), pageFromFlags(cv, cmd))
	if err != nil {
		return err
	}
	fmt.Printf("x=%g y=%g\n", pt.X, pt.Y)
	return nil
}

func fetchResource(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one URI")
	}
	uri := cmd.Args().Get(0)

	base := cmd.String("base")
	r, err := resources.Fetch(uri,
		resources.WithBasePath(base),
		resources.WithLogger(env.Log),
		resources.WithUserAgent(env.Cfg.Fetch.UserAgent),
		resources.WithTempDir(env.Cfg.Fetch.TempDir))
	if err != nil {
		return fmt.Errorf("unable to fetch resource: %w", err)
	}
	defer r.Close()

	if out := cmd.String("out"); len(out) > 0 {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", out, err)
		}
		defer f.Close()
		if _, err = io.Copy(f, r.File()); err != nil {
			return fmt.Errorf("unable to write resource payload: %w", err)
		}
		env.Log.Info("Resource saved", zap.String("uri", uri), zap.String("file", out))
		return nil
	}

	fmt.Printf("kind=%s mime=%s uri=%s bytes=%d\n", r.Kind(), r.Mimetype(), r.URI(), len(r.Data()))

	// For image payloads also report pixel dimensions.
	switch mimetype := r.Mimetype(); {
	case mimetype == "image/svg+xml":
		img, err := images.RasterizeSVG(r.Data(), 0, 0)
		if err != nil {
			env.Log.Warn("Unable to rasterize SVG resource", zap.String("uri", uri), zap.Error(err))
			break
		}
		b := img.Bounds()
		fmt.Printf("raster=%dx%d\n", b.Dx(), b.Dy())
	case strings.HasPrefix(mimetype, "image/"):
		info, err := images.Probe(r.Data())
		if err != nil {
			env.Log.Warn("Unable to read image resource", zap.String("uri", uri), zap.Error(err))
			break
		}
		fmt.Printf("image=%s %dx%d\n", info.Format, info.Width, info.Height)
	}
	return nil
}

// intFlag parses a numeric string flag, returning def when the flag is unset.
func intFlag(cmd *cli.Command, name string, def int) (int, error) {
	s := cmd.String(name)
	if len(s) == 0 {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid value for --%s: %w", name, err)
	}
	return v, nil
}

func rasterizeResource(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one URI")
	}
	uri := cmd.Args().Get(0)

	r, err := resources.Fetch(uri,
		resources.WithBasePath(cmd.String("base")),
		resources.WithLogger(env.Log),
		resources.WithUserAgent(env.Cfg.Fetch.UserAgent),
		resources.WithTempDir(env.Cfg.Fetch.TempDir))
	if err != nil {
		return fmt.Errorf("unable to fetch resource: %w", err)
	}
	defer r.Close()

	if r.Mimetype() != "image/svg+xml" {
		return fmt.Errorf("resource '%s' is not an SVG image (%s)", uri, r.Mimetype())
	}

	width, err := intFlag(cmd, "width", 0)
	if err != nil {
		return err
	}
	height, err := intFlag(cmd, "height", 0)
	if err != nil {
		return err
	}
	quality, err := intFlag(cmd, "quality", 85)
	if err != nil {
		return err
	}
	dpi, err := intFlag(cmd, "dpi", 150)
	if err != nil {
		return err
	}

	img, err := images.RasterizeSVG(r.Data(), width, height)
	if err != nil {
		return fmt.Errorf("unable to rasterize '%s': %w", uri, err)
	}

	data, err := images.EncodeJPEG(img, quality, images.DensityPerInch, uint16(dpi), uint16(dpi))
	if err != nil {
		return fmt.Errorf("unable to encode JPEG: %w", err)
	}

	out := cmd.String("out")
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", out, err)
	}

	b := img.Bounds()
	env.Log.Info("Rasterized resource",
		zap.String("uri", uri), zap.String("file", out),
		zap.Int("width", b.Dx()), zap.Int("height", b.Dy()),
		zap.Bool("grayscale", images.IsGrayscale(img)))
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
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
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
