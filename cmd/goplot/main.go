package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"goplot/internal/graph"
	"goplot/internal/panel"
	"goplot/internal/raster"
	"goplot/internal/tui"
)

func main() {
	pngOut := flag.String("png", "", "render the plot to this PNG file instead of starting the viewer")
	size := flag.String("size", "800x600", "PNG size as WIDTHxHEIGHT")
	timeAxis := flag.Bool("time", false, "label x as Unix time")
	asPanel := flag.Bool("panel", false, "with -png, render as a tinygo display panel would show it")
	debug := flag.String("debug", "", "append debug logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: goplot [flags] [data.csv|data.wkt]\n       goplot -png out.png [-size WxH] [-panel] data.csv\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *debug != "" {
		f, err := tea.LogToFile(*debug, "goplot")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		graph.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *asPanel && *pngOut == "" {
		log.Fatal("goplot: -panel needs -png")
	}
	if *pngOut != "" {
		if flag.NArg() != 1 {
			log.Fatal("goplot: -png needs a data file")
		}
		if err := export(flag.Arg(0), *pngOut, *size, *timeAxis, *asPanel); err != nil {
			log.Fatal(err)
		}
		return
	}

	var m tui.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(flag.Arg(0))
	} else {
		m = tui.New()
	}
	if *timeAxis {
		m = m.WithTimeAxis()
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// export renders the fitted plot of src to a PNG file, through the gg
// raster backend or, with asPanel, through the display panel backend.
func export(src, dst, size string, timeAxis, asPanel bool) error {
	var w, h int
	if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil || w < graph.MinSize || h < graph.MinSize {
		return fmt.Errorf("goplot: bad -size %q", size)
	}
	if asPanel && (w >= 1<<15 || h >= 1<<15) {
		return fmt.Errorf("goplot: -size %q too large for a panel", size)
	}
	m, err := tui.NewFromFile(src)
	if err != nil {
		return err
	}
	if timeAxis {
		m = m.WithTimeAxis()
	}

	var encode func(io.Writer) error
	if asPanel {
		encode, err = renderPanel(m, w, h)
	} else {
		encode, err = renderRaster(m, w, h)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("goplot: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderRaster(m tui.Model, w, h int) (func(io.Writer) error, error) {
	style := graph.LightStyle()
	s := raster.NewSurface(w, h, style)
	err := s.Draw(func(c graph.Canvas) {
		m.FitTo(c, s.Bounds(), style)
		m.Plot(c, s.Bounds(), style)
	})
	if err != nil {
		return nil, err
	}
	return s.EncodePNG, nil
}

func renderPanel(m tui.Model, w, h int) (func(io.Writer) error, error) {
	style := graph.DefaultStyle()
	fb := panel.NewFramebuffer(w, h)
	c := panel.New(fb)
	c.Clear(style.Background)
	m.FitTo(c, c.Bounds(), style)
	m.Plot(c, c.Bounds(), style)
	if err := c.Flush(); err != nil {
		return nil, err
	}
	return fb.EncodePNG, nil
}
