package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/cliplens/internal/app"
	"github.com/hyperifyio/cliplens/internal/clip"
	"github.com/hyperifyio/cliplens/internal/export"
	"github.com/hyperifyio/cliplens/internal/render"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath  string
		coarse     string
		format     string
		compact    bool
		fromClip   bool
		exportPDF  string
		configPath string
		verbose    bool
	)

	flag.StringVar(&inputPath, "input", "", "Read content from a file instead of stdin")
	flag.StringVar(&coarse, "type", "text", "Coarse clip type: text, image, files, html")
	flag.StringVar(&format, "format", "term", "Output format: term or json")
	flag.BoolVar(&compact, "compact", false, "Use compact display budgets")
	flag.BoolVar(&fromClip, "clipboard", false, "Read content from the system clipboard")
	flag.StringVar(&exportPDF, "export.pdf", "", "Also write the preview to a PDF at this path")
	flag.StringVar(&configPath, "config", "cliplens.yml", "Path to YAML config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	content, err := readContent(inputPath, fromClip)
	if err != nil {
		log.Error().Err(err).Msg("read content")
		os.Exit(1)
	}

	cfg := app.Config{
		UserAgent: os.Getenv("CLIPLENS_UA"),
		Vision: app.VisionConfig{
			BaseURL: os.Getenv("CLIPLENS_VISION_BASE"),
			APIKey:  os.Getenv("CLIPLENS_VISION_KEY"),
			Model:   os.Getenv("CLIPLENS_VISION_MODEL"),
		},
	}
	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})
	if fc, err := app.LoadFileConfig(configPath, explicitConfig); err != nil {
		log.Error().Err(err).Msg("load config")
		os.Exit(1)
	} else {
		fc.Merge(&cfg)
	}

	a := app.New(cfg)
	raw := clip.RawClip{Content: content, Type: clip.CoarseType(coarse)}
	p := a.Render(raw, clip.DisplayMode{Compact: compact})

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			log.Error().Err(err).Msg("encode preview")
			os.Exit(1)
		}
	case "term":
		fmt.Println(render.Terminal(p))
	default:
		log.Error().Str("format", format).Msg("unknown output format")
		os.Exit(2)
	}

	if exportPDF != "" {
		if err := export.PDF(p, exportPDF); err != nil {
			log.Error().Err(err).Str("out", exportPDF).Msg("pdf export failed")
			os.Exit(1)
		}
		log.Info().Str("out", exportPDF).Msg("wrote pdf")
	}
}

func readContent(inputPath string, fromClip bool) (string, error) {
	switch {
	case fromClip:
		return clipboard.ReadAll()
	case inputPath != "":
		b, err := os.ReadFile(inputPath)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case flag.NArg() > 0:
		return flag.Arg(0), nil
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
