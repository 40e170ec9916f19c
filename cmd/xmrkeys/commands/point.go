package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"xmrkeys/internal/crypto/edwards"
)

func pointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "point",
		Short: "ed25519 point arithmetic on 32-byte hex encodings",
	}
	cmd.AddCommand(pointAddCmd(), pointMultBaseCmd(), pointMultCmd())
	return cmd
}

// add P Q: print P + Q.
func pointAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <P> <Q>",
		Short: "Add two points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decodeHex("P", args[0], edwards.PointSize, false)
			if err != nil {
				return err
			}
			q, err := decodeHex("Q", args[1], edwards.PointSize, false)
			if err != nil {
				return err
			}
			r, err := edwards.PointAdd(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(r))
			return nil
		},
	}
}

// mult-base n: print n*G without clamping n.
func pointMultBaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mult-base <n>",
		Short: "Multiply the base point by a scalar (no clamping)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := decodeHex("n", args[0], edwards.ScalarSize, false)
			if err != nil {
				return err
			}
			r, err := edwards.ScalarMultBase(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(r))
			return nil
		},
	}
}

// mult n P: print n*P without clamping n.
func pointMultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mult <n> <P>",
		Short: "Multiply a point by a scalar (no clamping)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := decodeHex("n", args[0], edwards.ScalarSize, false)
			if err != nil {
				return err
			}
			p, err := decodeHex("P", args[1], edwards.PointSize, false)
			if err != nil {
				return err
			}
			r, err := edwards.ScalarMult(n, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(r))
			return nil
		},
	}
}
