package types

// Network selects the Monero network an address belongs to.
type Network string

const (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Stagenet Network = "stagenet"
)

// String returns the string form of the network.
func (n Network) String() string { return string(n) }

// AddressKind distinguishes the address formats sharing one network.
type AddressKind string

const (
	Standard   AddressKind = "standard"
	Subaddress AddressKind = "subaddress"
	Integrated AddressKind = "integrated"
)

// String returns the string form of the address kind.
func (k AddressKind) String() string { return string(k) }

// SubaddressIndex addresses one subaddress: Major selects the account, Minor
// the address within it. (0, 0) is the primary address.
type SubaddressIndex struct {
	Major uint32
	Minor uint32
}

// IsPrimary reports whether the index refers to the primary address.
func (i SubaddressIndex) IsPrimary() bool { return i.Major == 0 && i.Minor == 0 }
