package main

import (
	"encoding/hex"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hpackctl/internal/shared/compression/hpack"
)

func newEncodeCmd() *cobra.Command {
	var headersJSON string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON header list into an HPACK header block",
		RunE: func(cmd *cobra.Command, args []string) error {
			var headers hpack.HeaderList
			if err := json.Unmarshal([]byte(headersJSON), &headers); err != nil {
				return fmt.Errorf("hpackctl encode: invalid --headers-json: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			codec, err := cfg.NewCodec()
			if err != nil {
				return err
			}

			wire, err := codec.Compress(headers)
			if err != nil {
				logger.Error("encode failed", zap.Error(err))
				return err
			}

			fmt.Fprintln(os.Stdout, hex.EncodeToString(wire))
			return nil
		},
	}

	cmd.Flags().StringVar(&headersJSON, "headers-json", "[]", `header list as JSON, e.g. [{"name":":method","value":"GET"}]`)
	return cmd
}
