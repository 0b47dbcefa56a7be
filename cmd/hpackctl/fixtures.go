package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hpackctl/internal/client/cli/ui"
	"hpackctl/internal/shared/fixtures"
)

func newFixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Verify the built-in HPACK test vectors against this build's codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := ui.NewTable([]string{"Fixture", "Result"}).WithTitle("Built-in fixtures")

			failures := 0
			for _, f := range fixtures.Builtin {
				if err := fixtures.Verify(f); err != nil {
					logger.Error("fixture failed", zap.String("fixture", f.Name), zap.Error(err))
					table.AddRow([]string{f.Name, "FAIL: " + err.Error()})
					failures++
					continue
				}
				table.AddRow([]string{f.Name, "ok"})
			}

			table.Print()
			if failures > 0 {
				return fmt.Errorf("hpackctl fixtures: %d of %d fixtures failed", failures, len(fixtures.Builtin))
			}
			return nil
		},
	}
	return cmd
}
