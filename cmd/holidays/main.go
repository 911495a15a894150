// Package main prints the Swedish holidays of a year, or of one month
// including weekends.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/swedish-holidays/internal/calendar"
	"github.com/zapponejosh/swedish-holidays/internal/config"
	"github.com/zapponejosh/swedish-holidays/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("holidays failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// Load configuration
	cfg, err := config.Load(args)
	if errors.Is(err, config.ErrHelpWanted) {
		usage, err := config.Usage()
		if err != nil {
			return fmt.Errorf("generating config usage: %w", err)
		}
		fmt.Fprintln(stdout, usage)
		return nil
	}
	if err != nil {
		return err
	}

	// Setup structured logging
	log := logger.Setup(cfg, stderr)
	if cfg.IsDevelopment() {
		log.Debug("configuration", slog.String("config", cfg.Summary()))
	}

	var opts []calendar.Option
	if cfg.Year != 0 {
		opts = append(opts, calendar.WithYear(cfg.Year))
	}
	if cfg.Month != 0 {
		opts = append(opts, calendar.WithMonth(time.Month(cfg.Month)))
	}

	engine, err := calendar.New(opts...)
	if err != nil {
		return fmt.Errorf("compute holidays: %w", err)
	}

	log.Debug("holidays computed",
		slog.Int("year", engine.Year()),
		slog.String("month", engine.Month().String()),
		slog.String("easter", engine.EasterDate().Format(time.DateOnly)),
	)

	var holidays []calendar.Holiday
	if cfg.Weekends {
		holidays = engine.HolidaysIncludingWeekends()
	} else {
		holidays = engine.Holidays()
		calendar.SortByDate(holidays)
	}

	switch cfg.Output {
	case config.OutputJSON:
		return writeJSON(stdout, holidays)
	default:
		return writeText(stdout, holidays)
	}
}

// holidayView is the JSON shape of one holiday.
type holidayView struct {
	Date       string              `json:"date"`
	Weekday    string              `json:"weekday"`
	Name       string              `json:"name"`
	LocalName  string              `json:"local_name"`
	Observance calendar.Observance `json:"observance"`
}

func writeJSON(w io.Writer, holidays []calendar.Holiday) error {
	views := make([]holidayView, len(holidays))
	for i, h := range holidays {
		views[i] = holidayView{
			Date:       h.Date.Format(time.DateOnly),
			Weekday:    calendar.DayName(h.Date),
			Name:       h.Name,
			LocalName:  h.LocalName,
			Observance: h.Observance,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func writeText(w io.Writer, holidays []calendar.Holiday) error {
	for _, h := range holidays {
		if _, err := fmt.Fprintf(w, "%s  %-7s  %s\n",
			h.Date.Format(time.DateOnly), calendar.DayName(h.Date), h.LocalName); err != nil {
			return err
		}
	}
	return nil
}
