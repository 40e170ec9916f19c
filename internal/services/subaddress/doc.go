// Package subaddress derives Monero subaddresses from a primary address and
// its private view key.
//
// For index (major, minor) != (0, 0):
//
//	m = Hs("SubAddr\0" || view || LE32(major) || LE32(minor))
//	D = B + m*G     (subaddress spend key, B the primary spend key)
//	C = view * D    (subaddress view key)
//
// Index (0, 0) is the primary address itself and is returned unchanged.
package subaddress
