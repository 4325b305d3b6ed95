package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/js"
	"github.com/dhamidi/jex/jsni"
	"github.com/dhamidi/jex/project"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods <file>",
		Short: "List the native methods of one Java file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := project.LoadUnits(args)
			if err != nil {
				return err
			}

			bag := diag.NewBag()
			if err := jsni.Collect(context.Background(), js.NewProgram(), units, bag); err != nil {
				return err
			}
			if bag.Len() > 0 {
				diag.NewReporter(os.Stderr, false).PrintBag(bag)
			}

			for _, u := range units {
				for _, m := range u.Methods() {
					fmt.Printf("%s:%d: %s\n", u.Path, m.DeclaredLine, m.Signature)
				}
			}
			return nil
		},
	}
}
