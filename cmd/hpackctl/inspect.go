package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"hpackctl/internal/client/cli/ui"
	"hpackctl/internal/shared/compression/hpack"
)

func newInspectCmd() *cobra.Command {
	var wireHex string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode an HPACK header block and show the resulting dynamic table state",
		RunE: func(cmd *cobra.Command, args []string) error {
			wire, err := hex.DecodeString(wireHex)
			if err != nil {
				return fmt.Errorf("hpackctl inspect: invalid --hex: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			codec, err := cfg.NewCodec()
			if err != nil {
				return err
			}

			headers, err := codec.Decompress(wire)
			if err != nil {
				return err
			}

			fmt.Print(ui.RenderWireDump(wire))

			headerTable := ui.NewTable([]string{"Name", "Value"}).WithTitle("Decoded headers")
			for _, h := range headers {
				headerTable.AddRow([]string{h.Name, h.Value})
			}
			headerTable.Print()

			printDynamicTable(codec)
			return nil
		},
	}

	cmd.Flags().StringVar(&wireHex, "hex", "", "hex-encoded HPACK header block to decode")
	cmd.MarkFlagRequired("hex")
	return cmd
}

func printDynamicTable(codec *hpack.Codec) {
	state := codec.DecoderTableState()
	table := ui.NewTable([]string{"Field", "Value"}).WithTitle("Dynamic table (decoder)")
	table.AddRow([]string{"entries", fmt.Sprintf("%d", state.Entries)})
	table.AddRow([]string{"size", fmt.Sprintf("%d", state.Size)})
	table.AddRow([]string{"capacity", fmt.Sprintf("%d", state.Capacity)})
	table.Print()
}
