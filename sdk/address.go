package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM     AddressType = "evm"
	AddressTypeKey     AddressType = "key"
	AddressTypeHive    AddressType = "hive"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

// Address is an opaque account identifier as supplied by the host (like hive:alice).
type Address string

// String returns the literal representation of the address.
// Example payload: sdk.Address("hive:alice").String()
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to decide whether we deal with a user, contract or system account.
// Example payload: sdk.Address("contract:donationbox").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the DID prefix to categorize the address (evm, key, hive, ...).
// Example payload: sdk.Address("did:pkh:eip155").Type()
func (a Address) Type() AddressType {
	if strings.HasPrefix(a.String(), "did:pkh:eip155") {
		return AddressTypeEVM
	} else if strings.HasPrefix(a.String(), "did:key:") {
		return AddressTypeKey
	} else if strings.HasPrefix(a.String(), "hive:") {
		return AddressTypeHive
	} else if strings.HasPrefix(a.String(), "system:") {
		return AddressTypeSystem
	}
	return AddressTypeUnknown
}

// IsValid returns false if the address type detection failed, a light sanity check only.
// Example payload: sdk.Address("hive:alice").IsValid()
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}
