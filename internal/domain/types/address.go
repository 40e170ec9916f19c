package types

// PaymentIDSize is the length of the short payment id carried by integrated addresses.
const PaymentIDSize = 8

// Address is a decoded Monero address.
type Address struct {
	Network   Network
	Kind      AddressKind
	Spend     PublicKey
	View      PublicKey
	PaymentID []byte // integrated addresses only
}

// Output is a transaction output as seen by a receiver: the transaction public
// key R, the output index and the 8-byte encrypted amount.
type Output struct {
	TxPublicKey PublicKey
	Index       uint64
	EncAmount   [8]byte
}
