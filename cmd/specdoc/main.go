// Specdoc renders HTML documentation for an RDF vocabulary, reproducing
// the decommissioned generator's output byte for byte.
//
// Usage:
//
//	specdoc -input vocab.nt -out ./doc -width 64
//
// Flags:
//
//	-config     Optional JSON config file (flags and env override it)
//	-input      N-Triples vocabulary file (required)
//	-out        Output directory (default: ./doc)
//	-templates  Directory holding class.tpl and index.tpl (default: built-in)
//	-overrides  JSON manual-reordering table (default: none)
//	-width      Legacy hash width, 32 or 64 (default: 64)
//	-workers    Classes rendered in parallel (default: 1)
//	-loglevel   zerolog level: debug, info, warn, error (default: info)
//	-verify     Manifest to diff the generated tree against; exits 1 on drift
//
// Configuration may also come from the environment with a SPECDOC__
// prefix, e.g. SPECDOC__WIDTH=32.
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"

	"github.com/vocabgen/specdoc"
	"github.com/vocabgen/specdoc/overrides"
	"github.com/vocabgen/specdoc/render"
	"github.com/vocabgen/specdoc/vocab"
)

const envPrefix = "SPECDOC__"

func main() {
	configFlag := flag.String("config", "", "JSON config file")
	flag.String("input", "", "N-Triples vocabulary file")
	flag.String("out", "doc", "output directory")
	flag.String("templates", "", "template directory (class.tpl, index.tpl)")
	flag.String("overrides", "", "JSON manual-reordering table")
	flag.Int("width", 64, "legacy hash width (32 or 64)")
	flag.Int("workers", 1, "classes rendered in parallel")
	flag.String("loglevel", "info", "log level: debug, info, warn, error")
	flag.String("verify", "", "manifest to diff against after generating")
	flag.Parse()

	k := koanf.New(".")

	// Defaults, then config file, then environment, then explicitly set
	// flags. Later layers win.
	_ = k.Load(confmap.Provider(map[string]interface{}{
		"out":      "doc",
		"width":    64,
		"workers":  1,
		"loglevel": "info",
	}, "."), nil)

	if *configFlag != "" {
		if err := k.Load(file.Provider(*configFlag), json.Parser()); err != nil {
			fatal("load config file", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		fatal("load environment", err)
	}

	setFlags := map[string]interface{}{}
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			setFlags[f.Name] = f.Value.String()
		}
	})
	_ = k.Load(confmap.Provider(setFlags, "."), nil)

	level, err := zerolog.ParseLevel(k.String("loglevel"))
	if err != nil {
		fatal("parse log level", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	input := k.String("input")
	if input == "" {
		log.Fatal().Msg("missing required -input flag")
	}

	voc, err := vocab.Load(input)
	if err != nil {
		log.Fatal().Err(err).Str("input", input).Msg("load vocabulary")
	}
	log.Info().
		Int("classes", len(voc.Classes)).
		Int("properties", len(voc.Properties)).
		Msg("loaded vocabulary")

	opts := []specdoc.Option{
		specdoc.WithWidth(specdoc.Width(k.Int("width"))),
		specdoc.WithWorkers(k.Int("workers")),
		specdoc.WithLogger(log),
	}
	if dir := k.String("templates"); dir != "" {
		tpl, err := render.LoadTemplates(dir)
		if err != nil {
			log.Fatal().Err(err).Msg("load templates")
		}
		opts = append(opts, specdoc.WithTemplates(tpl))
	}
	if path := k.String("overrides"); path != "" {
		tbl, err := overrides.Load(path)
		if err != nil {
			log.Fatal().Err(err).Msg("load overrides")
		}
		opts = append(opts, specdoc.WithOverrides(tbl))
	}

	gen, err := specdoc.NewGenerator(context.Background(), voc, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("configure generator")
	}

	outDir := k.String("out")
	manifest, err := gen.Generate(outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("generate")
	}
	log.Info().Str("out", outDir).Int("files", len(manifest)).Msg("done")

	if expectedPath := k.String("verify"); expectedPath != "" {
		expected, err := specdoc.LoadManifest(expectedPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load verification manifest")
		}
		if diffs := expected.Diff(manifest); len(diffs) > 0 {
			for _, name := range diffs {
				log.Error().Str("file", name).Msg("output drifts from captured legacy tree")
			}
			os.Exit(1)
		}
		log.Info().Msg("output matches captured legacy tree")
	}
}

func fatal(msg string, err error) {
	l := zerolog.New(os.Stderr)
	l.Fatal().Err(err).Msg(msg)
}
