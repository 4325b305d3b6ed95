package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/format"
	"github.com/dhamidi/jex/js"
	"github.com/dhamidi/jex/jsni"
	"github.com/dhamidi/jex/project"
)

func newExtractCmd() *cobra.Command {
	var eager bool
	var params bool

	cmd := &cobra.Command{
		Use:   "extract [paths...]",
		Short: "Extract JavaScript blocks from native methods and dump them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			units, err := project.LoadUnits(roots)
			if err != nil {
				return err
			}

			ctx := context.Background()
			prog := js.NewProgram()
			bag := diag.NewBag()
			if eager {
				err = jsni.CollectEager(ctx, prog, units, bag)
			} else {
				err = jsni.Collect(ctx, prog, units, bag)
			}
			if err != nil {
				return err
			}
			if bag.Len() > 0 {
				diag.NewReporter(os.Stderr, false).PrintBag(bag)
			}

			enc := format.NewJSONEncoder(os.Stdout)
			enc.Params = params
			return enc.EncodeUnits(ctx, units, eager)
		},
	}

	cmd.Flags().BoolVar(&eager, "eager", false, "parse blocks during extraction")
	cmd.Flags().BoolVar(&params, "params", false, "include parameter names")

	return cmd
}
