package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"microgui/buffer"
	"microgui/gui"
	"microgui/native"
	"microgui/pixel"
)

const defaultSerialDevice = "/dev/ttyS1"
const expectedImageWidth = 128
const expectedImageHeight = 64

// pollInterval paces screens that have to be asked for input.
const pollInterval = 30 * time.Millisecond

var errQuit = errors.New("quit requested")

type config struct {
	device   string
	baud     int
	width    int
	height   int
	interval time.Duration
	snapshot string
	scale    int
	screen   int
	diskPath string
	level    slog.Level
}

// screen is where frames go and key events come from.
type screen interface {
	Present(fb *buffer.Buffer[pixel.BW]) error
	Events() <-chan gui.Event
	Close() error
}

// poller is implemented by screens whose input must be pumped from the
// render goroutine.
type poller interface {
	Poll() error
}

func parseFlags(args []string) (config, error) {
	var cfg config
	var level string
	fs := flag.NewFlagSet("lcdinator", flag.ContinueOnError)
	fs.StringVar(&cfg.device, "device", defaultSerialDevice, "serial device of the LCD (also accepted as the first argument)")
	fs.IntVar(&cfg.baud, "baud", 115200, "serial baud rate")
	fs.IntVar(&cfg.width, "width", expectedImageWidth, "display width in pixels")
	fs.IntVar(&cfg.height, "height", expectedImageHeight, "display height in pixels")
	fs.DurationVar(&cfg.interval, "interval", time.Second, "redraw and sampling interval")
	fs.StringVar(&cfg.snapshot, "snapshot", "", "render one frame to this BMP file and exit")
	fs.IntVar(&cfg.scale, "scale", 4, "snapshot and preview magnification")
	fs.IntVar(&cfg.screen, "screen", 0, "index of the first screen shown")
	fs.StringVar(&cfg.diskPath, "disk", "/", "mount point for the disk gauge")
	fs.StringVar(&level, "log-level", "info", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		cfg.device = fs.Arg(0)
	}
	if err := cfg.level.UnmarshalText([]byte(level)); err != nil {
		return cfg, fmt.Errorf("-log-level: %w", err)
	}
	switch {
	case cfg.width <= 0 || cfg.height <= 0:
		return cfg, fmt.Errorf("invalid display size %dx%d", cfg.width, cfg.height)
	case cfg.interval <= 0:
		return cfg, fmt.Errorf("-interval must be positive, got %v", cfg.interval)
	case cfg.scale < 1:
		return cfg, fmt.Errorf("-scale must be at least 1, got %d", cfg.scale)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.level}))
	slog.SetDefault(logger)
	gui.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("lcdinator stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	display, err := NewDisplay(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	metrics := NewMetrics(cfg.diskPath)
	screens := NewScreens(display.GUI, cfg.width, cfg.height, metrics)
	screens.show(cfg.screen)
	sample(metrics, screens)

	if cfg.snapshot != "" {
		if err := display.Draw(); err != nil {
			return err
		}
		if err := native.SaveBMP(cfg.snapshot, display.Image(), cfg.scale); err != nil {
			return err
		}
		slog.Info("snapshot written", "path", cfg.snapshot)
		return nil
	}

	scr, err := openScreen(ctx, cfg)
	if err != nil {
		return err
	}
	defer scr.Close()
	return loop(ctx, cfg, display, screens, metrics, scr)
}

func sample(m *Metrics, s *Screens) {
	if err := m.Sample(); err != nil {
		slog.Warn("metrics incomplete", "err", err)
	}
	s.Sample(m)
}

// loop redraws after every tick, key event or input poll until ctx is
// cancelled or the screen asks to quit.
func loop(ctx context.Context, cfg config, display *Display, screens *Screens, metrics *Metrics, scr screen) error {
	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	var pollC <-chan time.Time
	p, canPoll := scr.(poller)
	if canPoll {
		pt := time.NewTicker(pollInterval)
		defer pt.Stop()
		pollC = pt.C
	}

	events := scr.Events()
	for {
		if err := display.Draw(); err != nil {
			slog.Error("render failed", "err", err)
		}
		if err := scr.Present(display.Frame); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			sample(metrics, screens)
		case e, ok := <-events:
			if !ok {
				slog.Warn("input closed")
				events = nil
				continue
			}
			_ = display.GUI.Event(e)
		case <-pollC:
			if err := p.Poll(); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
		display.GUI.Drain(events)
	}
}
