package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"paycalc/internal/domain/payroll"
	"paycalc/internal/domain/reports"
	"paycalc/internal/intake"
	"paycalc/internal/platform/config"
	"paycalc/internal/platform/logger"
	"paycalc/internal/platform/rosterfile"
)

func main() {
	rosterPath := flag.String("roster", "", "preload employees from a .yaml or .json roster file")
	pdfPath := flag.String("pdf", "", "write the roster report as PDF to this path on exit")
	savePath := flag.String("save", "", "write the roster to this .yaml or .json file on exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	roster := payroll.NewRoster()
	if *rosterPath != "" {
		roster, err = rosterfile.Load(*rosterPath)
		if err != nil {
			log.Fatal("load roster failed", "path", *rosterPath, "err", err)
		}
		log.Info("roster loaded", "path", *rosterPath, "employees", roster.Len())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := intake.NewSession(os.Stdout, intake.WithRoster(roster), intake.WithLogger(log))
	if err := intake.Run(ctx, os.Stdin, session); err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Fatal("console session failed", "err", err)
		}
		log.Info("console session interrupted", "employees", session.Roster().Len())
	}

	if *savePath != "" {
		if err := rosterfile.Save(*savePath, session.Roster()); err != nil {
			log.Fatal("save roster failed", "path", *savePath, "err", err)
		}
		log.Info("roster saved", "path", *savePath, "employees", session.Roster().Len())
	}

	if *pdfPath != "" {
		if err := writePDF(*pdfPath, session.Roster(), cfg.ReportTitle); err != nil {
			log.Fatal("write pdf failed", "path", *pdfPath, "err", err)
		}
		log.Info("pdf written", "path", *pdfPath, "employees", session.Roster().Len())
	}
}

func writePDF(path string, roster *payroll.Roster, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	summary := reports.Summarize(roster.Employees())
	if err := reports.WritePDF(f, summary, reports.PDFOptions{Title: title, GeneratedAt: time.Now()}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
