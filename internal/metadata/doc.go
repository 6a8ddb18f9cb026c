// Package metadata builds the search marker for the CBOR metadata trailer
// that solc appends to compiled bytecode.
//
// The trailer ends with the "solc" key (64736f6c63), a 3-byte version
// string header (43), the version bytes, and the 2-byte trailer length
// (0033). Constructor arguments, when present, follow immediately after it.
package metadata
