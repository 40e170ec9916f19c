package interfaces

import (
	domaintypes "xmrkeys/internal/domain/types"
)

// SubaddressService derives Monero subaddresses from a primary address and
// its private view key.
type SubaddressService interface {
	DeriveSubaddress(
		primary string,
		view domaintypes.SecretKey,
		index domaintypes.SubaddressIndex,
	) (string, error)
	DeriveSubaddressKeys(
		spend domaintypes.PublicKey,
		view domaintypes.SecretKey,
		index domaintypes.SubaddressIndex,
	) (domaintypes.PublicKey, domaintypes.PublicKey, error)
}

// AmountService decodes encrypted output amounts addressed to a view key.
type AmountService interface {
	DecodeAmount(view domaintypes.SecretKey, out domaintypes.Output) (uint64, error)
	VerifyAmount(view domaintypes.SecretKey, out domaintypes.Output, expected uint64) (bool, error)
}
