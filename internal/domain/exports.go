package domain

import (
	interfaces "xmrkeys/internal/domain/interfaces"
	types "xmrkeys/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PublicKey       = types.PublicKey
	SecretKey       = types.SecretKey
	Network         = types.Network
	AddressKind     = types.AddressKind
	Address         = types.Address
	SubaddressIndex = types.SubaddressIndex
	Output          = types.Output
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SubaddressService = interfaces.SubaddressService
	AmountService     = interfaces.AmountService
)

// Re-exported constants.
const (
	KeySize       = types.KeySize
	PaymentIDSize = types.PaymentIDSize

	Mainnet  = types.Mainnet
	Testnet  = types.Testnet
	Stagenet = types.Stagenet

	Standard   = types.Standard
	Subaddress = types.Subaddress
	Integrated = types.Integrated
)

// MustPublicKey and MustSecretKey are re-exported constructors.
var (
	MustPublicKey = types.MustPublicKey
	MustSecretKey = types.MustSecretKey
)
