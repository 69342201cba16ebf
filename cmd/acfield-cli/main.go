package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	acfield "github.com/goliatone/go-acfield"
	"github.com/goliatone/go-acfield/internal/prompt"
	"github.com/goliatone/go-acfield/pkg/field"
	"github.com/goliatone/go-acfield/pkg/formatter"
	"github.com/goliatone/go-acfield/pkg/presets"
	"github.com/goliatone/go-acfield/pkg/sanitize"
	"github.com/goliatone/go-acfield/pkg/store/memory"
)

type options struct {
	site        string
	key         string
	args        string
	item        string
	presetsDir  string
	interactive bool
	sanitize    bool
	verbose     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.site, "site", "", "YAML site fixture providing fields, posts, terms and attachments")
	flag.StringVar(&opts.key, "field", "", "field key to render")
	flag.StringVar(&opts.args, "args", "", `field arguments as a query string, e.g. "type=link&label=Website"`)
	flag.StringVar(&opts.item, "item", "", `item ID (blank for the current item, "option" for site options)`)
	flag.StringVar(&opts.presetsDir, "presets", "", "directory of YAML/JSON field presets")
	flag.BoolVar(&opts.interactive, "interactive", false, "prompt for missing field key, type and options")
	flag.BoolVar(&opts.sanitize, "sanitize", false, "sanitize output with the field HTML policy")
	flag.BoolVar(&opts.verbose, "v", false, "verbose logging")
	flag.Parse()

	var driver prompt.Driver
	if opts.interactive {
		driver = prompt.NewSurveyDriver()
	}

	if err := run(context.Background(), opts, driver, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("acfield: %v", err)
	}
}

func run(ctx context.Context, opts options, driver prompt.Driver, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	site := memory.New()
	if opts.site != "" {
		loaded, err := memory.LoadFile(opts.site)
		if err != nil {
			return err
		}
		site = loaded
	}

	fmtOpts := []formatter.Option{
		formatter.WithStore(site),
		formatter.WithAttachments(site),
		formatter.WithTaxonomy(site),
		formatter.WithContent(site),
		formatter.WithLogger(logger),
	}
	var configured prompt.Configured
	if opts.presetsDir != "" {
		store, err := presets.LoadFS(os.DirFS(opts.presetsDir))
		if err != nil {
			return err
		}
		logger.Debug("presets loaded", slog.String("dir", opts.presetsDir), slog.Any("fields", store.Keys()))
		fmtOpts = append(fmtOpts, formatter.WithPresets(store))
		configured = func(key string) field.Config {
			preset, _ := store.Config(key)
			return field.Merge(store.Defaults(), preset)
		}
	}
	if opts.sanitize {
		fmtOpts = append(fmtOpts, formatter.WithSanitizer(sanitize.FieldPolicy()))
	}

	args, err := field.ParseArgs(opts.args)
	if err != nil {
		return err
	}
	req := prompt.Request{
		Key:  strings.TrimSpace(opts.key),
		Args: args,
		Item: field.ItemID(strings.TrimSpace(opts.item)),
	}
	if driver != nil {
		req, err = prompt.Complete(ctx, driver, req, configured)
		if err != nil {
			return err
		}
	}
	if req.Key == "" {
		return errors.New("missing -field (or use -interactive)")
	}

	f := acfield.New(fmtOpts...)
	out, err := f.Format(ctx, req.Key, req.Args, req.Item)
	if err != nil {
		return err
	}
	if out == "" {
		logger.Info("field rendered nothing", slog.String("field", req.Key))
		return nil
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}
