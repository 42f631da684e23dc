package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/console"
	"github.com/npillmayer/ordtree/fixture"
	"github.com/npillmayer/ordtree/html"
	"github.com/npillmayer/ordtree/treesvc"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
)

// session is the state of a single command invocation: a service with both
// trees loaded from the fixture.
type session struct {
	conf    Config
	svc     *treesvc.Service
	variant ordtree.Variant
	printer *console.Printer
	out     io.Writer
	errout  *lockedWriter
	cancel  context.CancelFunc
	events  sync.WaitGroup
}

// lockedWriter serializes writes of the event printer and of the main
// goroutine to stderr. Every write is a complete line.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// openSession reads the configuration, applies command line overrides,
// starts the tree service and loads the fixture into both trees.
func openSession(cmd *cobra.Command) (*session, error) {
	conf, err := loadConfig(cmd.Flag("config").Value.String())
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("fixture") {
		conf.Fixture, _ = flags.GetString("fixture")
	}
	if flags.Changed("variant") {
		conf.Variant, _ = flags.GetString("variant")
	}
	if flags.Changed("color") {
		conf.Color, _ = flags.GetString("color")
	}
	if err := setupTracing(conf); err != nil {
		return nil, err
	}
	v, err := ordtree.ParseVariant(conf.Variant)
	if err != nil {
		return nil, err
	}
	svc, err := treesvc.New(conf.Service)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	s := &session{
		conf:    conf,
		svc:     svc,
		variant: v,
		out:     cmd.OutOrStdout(),
		errout:  &lockedWriter{w: cmd.ErrOrStderr()},
		cancel:  cancel,
	}
	if s.printer, err = newPrinter(conf); err != nil {
		s.close()
		return nil, err
	}
	if ev, _ := flags.GetBool("events"); ev {
		if err := s.printEvents(ctx, s.errout); err != nil {
			s.close()
			return nil, err
		}
	}
	if err := s.load(s.errout); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

// close shuts down the service. Closing the service ends the event
// subscription once all published events are delivered, so the event printer
// is drained before the context is cancelled.
func (s *session) close() {
	s.svc.Close()
	s.events.Wait()
	s.cancel()
}

// load reads the fixture and inserts its records into both trees.
// Rejected records are reported, but do not stop loading.
func (s *session) load(errw io.Writer) error {
	recs, err := readRecords(s.conf.Fixture)
	if err != nil {
		return err
	}
	for _, v := range ordtree.Variants {
		n, err := s.svc.Load(v, recs)
		if err != nil {
			fmt.Fprintf(errw, "%s: %d of %d records rejected:\n%v\n", v, len(recs)-n, len(recs), err)
		}
	}
	return nil
}

func readRecords(path string) ([]ordtree.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		recs, err := html.RecordsFromHTML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return recs, nil
	}
	set, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	return set.Records, nil
}

func (s *session) printEvents(ctx context.Context, w io.Writer) error {
	ch, err := s.svc.Subscribe(ctx)
	if err != nil {
		return err
	}
	s.events.Add(1)
	go func() {
		defer s.events.Done()
		for e := range ch {
			fmt.Fprintf(w, "event %s\n", e)
		}
	}()
	return nil
}

func newPrinter(conf Config) (*console.Printer, error) {
	var palette console.Palette
	switch conf.Color {
	case "always":
		color.NoColor = false
		palette = console.DefaultPalette()
	case "never":
	case "auto", "":
		if console.IsTerminal() && !color.NoColor {
			palette = console.DefaultPalette()
		}
	default:
		return nil, fmt.Errorf("unknown color mode %q", conf.Color)
	}
	return console.NewPrinter(palette, uax11.ContextFromEnvironment()), nil
}

func setupTracing(conf Config) error {
	level := tracing.LevelError
	switch conf.TraceLevel {
	case "debug":
		level = tracing.LevelDebug
	case "info":
		level = tracing.LevelInfo
	case "error", "":
	default:
		return fmt.Errorf("unknown trace level %q", conf.TraceLevel)
	}
	if gtrace.CoreTracer != nil {
		gtrace.CoreTracer.SetTraceLevel(level)
	}
	if t := tracing.Select("ordtree"); t != nil {
		t.SetTraceLevel(level)
	}
	return nil
}
