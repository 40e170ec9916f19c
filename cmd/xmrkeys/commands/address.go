package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"xmrkeys/internal/crypto"
	"xmrkeys/internal/domain"
	"xmrkeys/internal/monero/address"
)

func addressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Encode or inspect Monero addresses",
	}
	cmd.AddCommand(addressEncodeCmd(), addressDecodeCmd())
	return cmd
}

// encode: build an address for the configured network from two public keys.
func addressEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode public spend and view keys as an address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spendHex, err := requiredSetting("spend")
			if err != nil {
				return err
			}
			viewHex, err := requiredSetting("view")
			if err != nil {
				return err
			}
			spend, err := crypto.ParsePublicKey(spendHex)
			if err != nil {
				return err
			}
			view, err := crypto.ParsePublicKey(viewHex)
			if err != nil {
				return err
			}
			addr := domain.Address{
				Network: appCtx.Config.Network,
				Kind:    domain.Standard,
				Spend:   spend,
				View:    view,
			}
			if settings.GetBool("subaddress") {
				addr.Kind = domain.Subaddress
			}
			if pid := settings.GetString("payment-id"); pid != "" {
				if addr.PaymentID, err = decodeHex("payment id", pid, domain.PaymentIDSize, false); err != nil {
					return err
				}
				addr.Kind = domain.Integrated
			}
			s, err := address.Encode(addr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().String("spend", "", "public spend key (hex)")
	cmd.Flags().String("view", "", "public view key (hex)")
	cmd.Flags().Bool("subaddress", false, "encode as a subaddress")
	cmd.Flags().String("payment-id", "", "8-byte payment id (hex) for an integrated address")
	return cmd
}

func addressDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <address>",
		Short: "Print the network, kind and keys of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := address.Decode(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "network: %s\n", addr.Network)
			fmt.Fprintf(out, "kind:    %s\n", addr.Kind)
			fmt.Fprintf(out, "spend:   %s\n", addr.Spend)
			fmt.Fprintf(out, "view:    %s\n", addr.View)
			if addr.PaymentID != nil {
				fmt.Fprintf(out, "payment: %s\n", hex.EncodeToString(addr.PaymentID))
			}
			return nil
		},
	}
}

// spend-key <address>: print the public spend key.
func spendKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spend-key <address>",
		Short: "Print the public spend key of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := address.PublicSpendKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	}
}
