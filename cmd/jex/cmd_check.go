package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/js"
	"github.com/dhamidi/jex/jsni"
	"github.com/dhamidi/jex/project"
)

func newCheckCmd() *cobra.Command {
	var configPath string
	var jobs int
	var eager bool
	var colorMode string

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse every JavaScript block and report problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Roots = args
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("eager") {
				cfg.Eager = eager
			}

			units, err := project.LoadUnits(cfg.Roots)
			if err != nil {
				return err
			}

			ctx := context.Background()
			prog := js.NewProgram()
			bag := diag.NewBag()
			if cfg.Eager {
				err = jsni.CollectEager(ctx, prog, units, bag)
			} else {
				// Collection fans out per unit; parsing mutates the
				// shared program scope and stays on this goroutine.
				err = jsni.CollectAll(ctx, prog, units, bag, cfg.Jobs)
				if err == nil {
					err = parseCollected(ctx, units, bag)
				}
			}
			if err != nil {
				return err
			}

			diag.NewReporter(os.Stdout, colorEnabled(colorMode)).PrintBag(bag)

			methods := 0
			for _, u := range units {
				methods += len(u.Methods())
			}
			fmt.Printf("%d native methods in %d units, %d problems\n", methods, len(units), bag.Len())

			if bag.HasErrors() {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", project.ConfigFile, "project config file")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "units collected in parallel")
	cmd.Flags().BoolVar(&eager, "eager", false, "parse blocks during collection")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output: always, never, or auto")

	return cmd
}

func parseCollected(ctx context.Context, units []*jsni.Unit, sink diag.Sink) error {
	for _, u := range units {
		for _, m := range u.Methods() {
			_, fail, err := m.Function(ctx)
			if err != nil {
				return err
			}
			if fail != nil {
				sink.Report(*fail)
			}
		}
	}
	return nil
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}
