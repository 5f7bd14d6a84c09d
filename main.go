package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"notecal/cli"
	"notecal/config"
	"notecal/grid"
	"notecal/render"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	slog.SetDefault(cli.NewLogger(opts.LogLevel, opts.LogFormat, os.Stderr))

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("unable to locate config: %w", err)
		}
	}

	if opts.InitConfig {
		if err := config.Save(configPath, config.Default()); err != nil {
			return fmt.Errorf("unable to write config: %w", err)
		}
		slog.Info("Config written.", "path", configPath)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)
	slog.Debug("Config loaded.", "path", configPath, "weeks_before", cfg.WeeksBefore, "weeks_after", cfg.WeeksAfter)

	switch {
	case opts.ServeAddr != "":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return serve(ctx, opts.ServeAddr, cfg)
	case opts.Preview:
		_, err := tea.NewProgram(newPreviewModel(cfg, referenceDate(opts), time.Now), tea.WithAltScreen()).Run()
		return err
	}

	return writeCalendar(outW, opts, cfg)
}

func applyOverrides(cfg *config.Config, opts *cli.Options) {
	if opts.WeeksBefore >= 0 {
		cfg.WeeksBefore = opts.WeeksBefore
	}
	if opts.WeeksAfter >= 0 {
		cfg.WeeksAfter = opts.WeeksAfter
	}
}

func referenceDate(opts *cli.Options) time.Time {
	if opts.Date.IsZero() {
		return time.Now()
	}
	return opts.Date
}

// writeCalendar renders one calendar to opts.Out, or to outW for "-". A
// file is only created once the whole page rendered.
func writeCalendar(outW io.Writer, opts *cli.Options, cfg *config.Config) error {
	theme := render.PlainTheme()
	if opts.Out == "-" {
		theme = render.NewTheme()
	}

	buf := new(bytes.Buffer)
	if err := renderCalendar(buf, opts.Format, referenceDate(opts), cfg, theme); err != nil {
		return err
	}

	if opts.Out == "-" {
		_, err := buf.WriteTo(outW)
		return err
	}

	if err := os.WriteFile(opts.Out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write calendar: %w", err)
	}
	slog.Info("Calendar written.", "path", opts.Out, "format", opts.Format)
	return nil
}

func renderCalendar(w io.Writer, format string, ref time.Time, cfg *config.Config, theme render.Theme) error {
	g, err := grid.Build(ref, cfg.WeeksBefore, cfg.WeeksAfter)
	if err != nil {
		return fmt.Errorf("unable to build calendar: %w", err)
	}
	slog.Debug("Grid built.", "weeks", len(g.Weeks), "start", g.Start.Format(time.DateOnly), "stop", g.Stop.Format(time.DateOnly))

	if format == "text" {
		_, err := io.WriteString(w, render.Terminal(g, theme)+"\n")
		return err
	}

	return render.HTML(w, g, render.PageOptions{
		Title:    cfg.Title,
		PageSize: cfg.PageSize,
		Favicon:  true,
	})
}
