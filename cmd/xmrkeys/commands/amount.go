package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"xmrkeys/internal/crypto"
	"xmrkeys/internal/domain"
	amountsvc "xmrkeys/internal/services/amount"
)

func amountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amount",
		Short: "Decrypt output amounts with the private view key",
	}
	cmd.AddCommand(amountDecodeCmd(), amountVerifyCmd())
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("view-key", "", "private view key (hex)")
	cmd.Flags().String("tx-key", "", "transaction public key R (hex)")
	cmd.Flags().String("extra", "", "tx extra (hex); used when --tx-key is empty")
	cmd.Flags().String("ecdh", "", "encrypted amount (8 bytes hex)")
	cmd.Flags().Uint64("index", 0, "output index within the transaction")
}

// outputFromSettings assembles the output described by the flags.
func outputFromSettings() (domain.Output, error) {
	var out domain.Output
	switch {
	case settings.GetString("tx-key") != "":
		r, err := crypto.ParsePublicKey(settings.GetString("tx-key"))
		if err != nil {
			return out, err
		}
		out.TxPublicKey = r
	case settings.GetString("extra") != "":
		raw, err := decodeHex("extra", settings.GetString("extra"), 1<<16, true)
		if err != nil {
			return out, err
		}
		r, err := amountsvc.TxPublicKeyFromExtra(raw)
		if err != nil {
			return out, err
		}
		out.TxPublicKey = r
	default:
		return out, errors.New("one of --tx-key or --extra is required")
	}

	ecdh, err := requiredSetting("ecdh")
	if err != nil {
		return out, err
	}
	enc, err := decodeHex("ecdh", ecdh, len(out.EncAmount), false)
	if err != nil {
		return out, err
	}
	copy(out.EncAmount[:], enc)
	out.Index = settings.GetUint64("index")
	return out, nil
}

func amountDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Print the amount of an output in XMR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := viewKey()
			if err != nil {
				return err
			}
			out, err := outputFromSettings()
			if err != nil {
				return err
			}
			amt, err := appCtx.Amounts.DecodeAmount(view, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), amountsvc.FormatXMR(amt))
			return nil
		},
	}
	addOutputFlags(cmd)
	return cmd
}

func amountVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that an output carries the expected XMR amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expect, err := requiredSetting("expect")
			if err != nil {
				return err
			}
			expected, err := amountsvc.ParseXMR(expect)
			if err != nil {
				return err
			}
			view, err := viewKey()
			if err != nil {
				return err
			}
			out, err := outputFromSettings()
			if err != nil {
				return err
			}
			ok, err := appCtx.Amounts.VerifyAmount(view, out, expected)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Errorf("amount mismatch: expected %s XMR", amountsvc.FormatXMR(expected))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().String("expect", "", "expected amount in XMR, e.g. 1.5")
	return cmd
}
