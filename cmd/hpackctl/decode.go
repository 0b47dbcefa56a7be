package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hpackctl/internal/client/cli/ui"
)

func newDecodeCmd() *cobra.Command {
	var wireHex string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode an HPACK header block (hex) into headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			wire, err := hex.DecodeString(wireHex)
			if err != nil {
				return fmt.Errorf("hpackctl decode: invalid --hex: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// Wire bytes come from the network or an untrusted caller,
			// so decode through the recovery-wrapped codec.
			codec, err := cfg.NewCodecWithRecovery(logger, nil)
			if err != nil {
				return err
			}

			headers, err := codec.Decompress(wire)
			if err != nil {
				logger.Error("decode failed", zap.Error(err))
				return err
			}

			table := ui.NewTable([]string{"Name", "Value"}).WithTitle("Decoded headers")
			for _, h := range headers {
				table.AddRow([]string{h.Name, h.Value})
			}
			table.Print()
			return nil
		},
	}

	cmd.Flags().StringVar(&wireHex, "hex", "", "hex-encoded HPACK header block")
	cmd.MarkFlagRequired("hex")
	return cmd
}
