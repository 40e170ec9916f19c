package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"xmrkeys/internal/crypto"
	"xmrkeys/internal/domain"
)

// viewKey reads the private view key from --view-key or XMRKEYS_VIEW_KEY.
func viewKey() (domain.SecretKey, error) {
	s, err := requiredSetting("view-key")
	if err != nil {
		return domain.SecretKey{}, err
	}
	return crypto.ParseSecretKey(s)
}

// subaddress <address>: derive the subaddress at --major/--minor.
func subaddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subaddress <address>",
		Short: "Derive a subaddress from a primary address and its private view key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := viewKey()
			if err != nil {
				return err
			}
			index := domain.SubaddressIndex{
				Major: settings.GetUint32("major"),
				Minor: settings.GetUint32("minor"),
			}
			sub, err := appCtx.Subaddresses.DeriveSubaddress(args[0], view, index)
			if err != nil {
				return errors.Wrapf(err, "deriving subaddress %d/%d", index.Major, index.Minor)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sub)
			return nil
		},
	}
	cmd.Flags().String("view-key", "", "private view key (hex)")
	cmd.Flags().Uint32("major", 0, "account index")
	cmd.Flags().Uint32("minor", 0, "address index within the account")
	return cmd
}
