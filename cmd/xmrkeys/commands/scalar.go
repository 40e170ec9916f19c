package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"xmrkeys/internal/crypto/edwards"
)

func scalarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scalar",
		Short: "Scalar arithmetic modulo the group order L",
	}
	cmd.AddCommand(scalarReduceCmd(), scalarAddCmd())
	return cmd
}

func scalarReduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <s>",
		Short: "Reduce up to 64 little-endian bytes modulo L",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := decodeHex("s", args[0], edwards.WideScalarSize, true)
			if err != nil {
				return err
			}
			r, err := edwards.ScalarReduce(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(r))
			return nil
		},
	}
}

func scalarAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <p> <q>",
		Short: "Add two canonical scalars modulo L",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decodeHex("p", args[0], edwards.ScalarSize, false)
			if err != nil {
				return err
			}
			q, err := decodeHex("q", args[1], edwards.ScalarSize, false)
			if err != nil {
				return err
			}
			r, err := edwards.ScalarAdd(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(r))
			return nil
		},
	}
}
