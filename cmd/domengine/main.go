package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-domengine/internal/loader"
	"github.com/goliatone/go-domengine/pkg/datafile"
	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/prompt"
	"github.com/goliatone/go-domengine/pkg/render"
	"github.com/goliatone/go-domengine/pkg/sanitize"
)

func main() {
	source := flag.String("template", "", "template file path or URL")
	dataPath := flag.String("data", "", "YAML or JSON data file")
	output := flag.String("output", "", "output file (stdout if empty)")
	policyName := flag.String("policy", "none", "sanitization policy (none, ugc, strict)")
	interactive := flag.Bool("interactive", false, "prompt for missing required values")
	listKeys := flag.Bool("keys", false, "list the keys the template references and exit")
	companion := flag.Bool("companion", false, "load the .html file next to the given path")
	cacheSize := flag.Int("cache-size", 0, "bound the fragment cache (0 = unbounded)")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP timeout for URL templates")
	verbose := flag.Bool("verbose", false, "log engine diagnostics to stderr")
	flag.Parse()

	ctx := context.Background()

	src, err := parseSource(*source)
	if err != nil {
		log.Fatalf("invalid template source: %v", err)
	}

	l := loader.New(loader.Options{
		AllowHTTPFallback: true,
		RequestTimeout:    *timeout,
		Companion:         *companion,
	})
	markup, err := l.Load(ctx, src)
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	policy, err := sanitize.NewRegistry().Get(*policyName)
	if err != nil {
		log.Fatalf("Failed to select policy: %v", err)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	engine := render.New(
		render.WithPolicy(policy),
		render.WithCacheSize(*cacheSize),
		render.WithLogger(logger),
	)

	if *listKeys {
		keys, err := engine.Keys(markup)
		if err != nil {
			log.Fatalf("Failed to compile template: %v", err)
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return
	}

	data := model.Data{}
	if *dataPath != "" {
		data, err = datafile.Load(*dataPath)
		if err != nil {
			log.Fatalf("Failed to load data: %v", err)
		}
	}
	tmpl := model.New(markup, data)

	var out string
	if *interactive {
		out, err = prompt.NewFiller(prompt.NewSurveyDriver()).Serialize(ctx, engine, tmpl)
	} else {
		out, err = engine.Serialize(tmpl)
	}
	if err != nil {
		log.Fatalf("Failed to render template: %v", err)
	}

	logger.Debug("domengine: rendered template", "bytes", len(out), "cache", engine.Stats())

	if *output != "" {
		if err := atomic.WriteFile(*output, strings.NewReader(out)); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Markup written to %s\n", *output)
		return
	}
	fmt.Println(out)
}

func parseSource(raw string) (loader.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, fmt.Errorf("-template is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return loader.FromURL(path)
	}
	return loader.FromFile(path), nil
}
