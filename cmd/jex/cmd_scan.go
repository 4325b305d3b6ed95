package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jex/diag"
	"github.com/dhamidi/jex/js"
	"github.com/dhamidi/jex/jsni"
	"github.com/dhamidi/jex/project"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <path>",
		Short: "Scan a source tree for native methods with JavaScript blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0])
		},
	}
}

func runScan(path string) error {
	units, err := project.LoadUnits([]string{path})
	if err != nil {
		return err
	}

	fmt.Printf("Found %d files to scan\n", len(units))

	bag := diag.NewBag()
	if err := jsni.Collect(context.Background(), js.NewProgram(), units, bag); err != nil {
		return err
	}

	withBlocks := 0
	methods := 0
	for i, u := range units {
		fmt.Printf("[%d/%d] ", i+1, len(units))
		if u.Status == jsni.StatusError {
			fmt.Printf("[ERROR] %s\n", u.Path)
			continue
		}
		fmt.Printf("[OK] %s (%d native methods)\n", u.Path, len(u.Methods()))
		if len(u.Methods()) > 0 {
			withBlocks++
			methods += len(u.Methods())
		}
	}

	fmt.Printf("\n=== SCAN COMPLETE ===\n")
	fmt.Printf("Units with JSNI: %d\n", withBlocks)
	fmt.Printf("Native methods: %d\n", methods)
	fmt.Printf("Problems: %d\n", bag.Len())
	bag.Sort()
	for _, d := range bag.Items() {
		fmt.Printf("  - %s: %s\n", d.Pos, d.Message)
	}
	return nil
}
