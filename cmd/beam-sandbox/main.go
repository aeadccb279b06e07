package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"github.com/lixenwraith/beamcrawl/beam"
	"github.com/lixenwraith/beamcrawl/config"
	"github.com/lixenwraith/beamcrawl/logging"
	"github.com/lixenwraith/beamcrawl/noise"
	"github.com/lixenwraith/beamcrawl/zaps"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML engine config (default: config/beam.toml, then embedded)")
	seedFlag     = flag.Uint64("seed", 1, "Level seed")
	widthFlag    = flag.Int("width", 61, "Map width")
	heightFlag   = flag.Int("height", 21, "Map height")
	monstersFlag = flag.Int("monsters", 10, "Hostile monsters per level")
	powerFlag    = flag.Int("power", 50, "Initial spell power")
	logFlag      = flag.String("log", "", "Write debug log to this file")
	dumpFlag     = flag.String("dump", "", "Write the zap registry as JSON to this file (- for stdout) and exit")
	reportFlag   = flag.String("report", "", "Write the last firing report as JSON to this file on exit")
	localesFlag  = flag.String("locales", "", "Directory of gettext message catalogues")
	langFlag     = flag.String("lang", "en_US", "Message catalogue language")
	muteFlag     = flag.Bool("mute", false, "Disable sound")
)

// sessionReport is what -report writes
type sessionReport struct {
	Last  *beam.Report   `json:"last"`
	Stats map[string]any `json:"stats"`
}

func main() {
	flag.Parse()

	if *dumpFlag != "" {
		if err := dumpRegistry(*dumpFlag); err != nil {
			fmt.Fprintf(os.Stderr, "dump failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *logFlag != "" {
		logger, err = logging.New(cfg.Log.Level, *logFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	if *localesFlag != "" {
		gotext.Configure(*localesFlag, *langFlag, "default")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBEAM SANDBOX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var s *sandbox
	var sink noise.Sink = noise.Nop{}
	if !*muteFlag {
		spk := noise.NewSpeaker(func() gruid.Point { return s.player.Pos() })
		if err := spk.Initialize(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer spk.Cleanup()
			sink = spk
		}
	}

	s = newSandbox(screen, cfg, logger, sink, options{
		Width:    *widthFlag,
		Height:   *heightFlag,
		Monsters: *monstersFlag,
		Seed:     *seedFlag,
		Power:    *powerFlag,
	})
	s.draw()
	for {
		ev := screen.PollEvent()
		if ev == nil || s.handle(ev) {
			break
		}
	}
	screen.Fini()

	if *reportFlag != "" {
		if err := writeReport(*reportFlag, s); err != nil {
			fmt.Fprintf(os.Stderr, "report failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func dumpRegistry(path string) error {
	if path == "-" {
		return writeJSON(os.Stdout, zaps.All())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(f, zaps.All())
}

func writeReport(path string, s *sandbox) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(f, sessionReport{Last: s.last, Stats: s.stats.Snapshot()})
}

func writeJSON(w io.Writer, v any) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
