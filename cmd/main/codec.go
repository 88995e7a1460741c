package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	db_codec "github.com/nivschuman/FixedBytesSQL/internal/database/codec"
	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <identifier>",
	Short: "Print the parameter bound for an identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		column, err := columnFromFlags(cmd)
		if err != nil {
			return err
		}

		address, err := fixedbytes.FromHex[fixedbytes.W20](args[0])
		if err != nil {
			return err
		}

		encoded, err := db_codec.Binder[fixedbytes.W20]{}.Bind(column, address)
		if err != nil {
			return err
		}

		switch v := encoded.(type) {
		case []byte:
			fmt.Fprintf(cmd.OutOrStdout(), "binary %x\n", v)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "text %v\n", v)
		}
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <column value>",
	Short: "Decode a column value into an identifier",
	Long: `Decode a column value as the driver would return it. Values of binary
columns are given as hex with an optional 0x prefix, values of text columns verbatim.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		column, err := columnFromFlags(cmd)
		if err != nil {
			return err
		}

		encoding, err := column.Encoding()
		if err != nil {
			return err
		}

		var raw any = args[0]
		if encoding == db_dialect.NativeBinary && !strings.HasPrefix(args[0], `\x`) {
			digits := strings.TrimPrefix(strings.TrimPrefix(args[0], "0x"), "0X")
			b, err := hex.DecodeString(digits)
			if err != nil {
				return fmt.Errorf("binary column value must be hex: %w", err)
			}
			raw = b
		}

		address, err := db_codec.Decoder[fixedbytes.W20]{}.Decode(column, raw)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), address)
		return nil
	},
}

func columnFromFlags(cmd *cobra.Command) (db_dialect.Column, error) {
	backendName, _ := cmd.Flags().GetString("backend")
	columnType, _ := cmd.Flags().GetString("column-type")

	backend, err := db_dialect.ParseBackend(backendName)
	if err != nil {
		return db_dialect.Column{}, err
	}

	return db_dialect.Column{Backend: backend, Type: columnType}, nil
}
