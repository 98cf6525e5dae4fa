// Package validatorpk handles stakeholder public keys. A PubKey pairs a key
// type byte with the raw key material, so the beacon can carry keys of
// different schemes without the callers knowing curve details. The boundary
// layer uses Address() to map an authenticated session key onto the
// stakeholder identity the certificate store is keyed by.
package validatorpk

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// PubKey is a typed stakeholder public key.
type PubKey struct {
	// Type identifies the signature scheme of the key.
	Type uint8
	// Raw is the uncompressed key material.
	Raw []byte
}

// Types enumerates the supported key type bytes.
var Types = struct {
	Secp256k1 uint8
}{
	Secp256k1: 0xc0,
}

var (
	ErrEmptyPubkey       = errors.New("empty pubkey")
	ErrUnknownKeyType    = errors.New("unknown public key type")
	ErrMalformedSecp256k = errors.New("malformed secp256k1 public key")
)

// Empty reports whether the key is uninitialized.
func (pk PubKey) Empty() bool {
	return len(pk.Raw) == 0 && pk.Type == 0
}

// Bytes returns the flat representation: the type byte followed by the raw key.
func (pk PubKey) Bytes() []byte {
	return append([]byte{pk.Type}, pk.Raw...)
}

// String returns the 0x-prefixed hex representation of Bytes.
func (pk PubKey) String() string {
	return "0x" + common.Bytes2Hex(pk.Bytes())
}

// Copy returns a deep copy. Raw is a slice, so plain assignment would share
// the underlying array.
func (pk PubKey) Copy() PubKey {
	return PubKey{
		Type: pk.Type,
		Raw:  common.CopyBytes(pk.Raw),
	}
}

// Address derives the stakeholder address from the key.
// Only secp256k1 keys have an address form.
func (pk PubKey) Address() (common.Address, error) {
	if pk.Type != Types.Secp256k1 {
		return common.Address{}, ErrUnknownKeyType
	}
	key, err := crypto.UnmarshalPubkey(pk.Raw)
	if err != nil {
		return common.Address{}, ErrMalformedSecp256k
	}
	return crypto.PubkeyToAddress(*key), nil
}

// FromString parses a hex string (with or without the 0x prefix).
func FromString(str string) (PubKey, error) {
	return FromBytes(common.FromHex(str))
}

// FromBytes reconstructs a PubKey from its flat representation.
func FromBytes(b []byte) (PubKey, error) {
	if len(b) == 0 {
		return PubKey{}, ErrEmptyPubkey
	}
	return PubKey{b[0], b[1:]}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (pk *PubKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PubKey) UnmarshalText(input []byte) error {
	res, err := FromString(string(input))
	if err != nil {
		return err
	}
	*pk = res
	return nil
}
