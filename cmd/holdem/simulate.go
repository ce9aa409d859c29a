package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/fileutil"
	"github.com/lox/holdem-engine/internal/simulator"
)

type SimulateCmd struct {
	Config  string        `short:"c" default:"holdem.hcl" type:"path" help:"HCL configuration file (defaults are used when missing)"`
	Hands   int           `short:"n" help:"Hands per table, overrides the config file"`
	Tables  int           `short:"t" help:"Number of independent tables, overrides the config file"`
	Seed    *int64        `help:"Random seed, overrides the config file"`
	Workers int           `short:"w" help:"Tables played concurrently (0 for GOMAXPROCS)"`
	Timeout time.Duration `help:"Per-decision timeout, overrides the config file"`
	JSON    string        `type:"path" help:"Also write the report as JSON to this file"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	logger := globals.logger()

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if globals.LogLevel == "" {
		logger.SetLevel(cfg.Level())
	}

	simCfg := simulator.FromConfig(cfg, logger)
	if c.Hands > 0 {
		simCfg.Hands = c.Hands
	}
	if c.Tables > 0 {
		simCfg.Tables = c.Tables
	}
	if c.Seed != nil {
		simCfg.Seed = *c.Seed
	}
	if c.Workers > 0 {
		simCfg.Workers = c.Workers
	}
	if c.Timeout > 0 {
		simCfg.DecisionTimeout = c.Timeout
	}

	sim, err := simulator.New(simCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting simulation", "hands", simCfg.Hands, "tables", simCfg.Tables, "seed", simCfg.Seed)
	start := time.Now()
	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	if c.JSON != "" {
		if err := fileutil.WriteJSON(c.JSON, report); err != nil {
			return err
		}
		logger.Info("Report written", "path", c.JSON)
	}

	fmt.Print(renderReport(report, simCfg.BigBlind))
	fmt.Printf("\n%d hands in %v (seed %d)\n", report.Hands, time.Since(start).Truncate(time.Millisecond), simCfg.Seed)
	return nil
}
