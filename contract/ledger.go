package contract

import "donation_box/sdk"

////////////////////////////////////////////////////////////////////////////////
// Donor ledger persistence
//
// Layout: one amount slot per donor (kDonor+address), an insertion-ordered
// index of addresses (kDonorIndex) and the DonorsCount counter. The index
// order is the enumeration order every read-side listing relies on.
////////////////////////////////////////////////////////////////////////////////

// getDonation loads a donor's cumulative amount, zero for unknown accounts.
func getDonation(addr sdk.Address) Amount {
	ptr := getState().Get(donorKey(addr))
	if ptr == nil || *ptr == "" {
		return ZeroAmount()
	}
	amount, err := ParseAmount(*ptr)
	if err != nil {
		// a corrupt slot would break the ledger/total invariant, surface loudly
		fail(ErrInvalidAmount, "corrupt donor record for "+addr.String())
	}
	return amount
}

// setDonation writes a donor's cumulative amount back to its slot.
func setDonation(addr sdk.Address, amount Amount) {
	getState().Set(donorKey(addr), amount.String())
}

// donorIndex returns every donor address in first-insertion order.
func donorIndex() []string {
	ptr := getState().Get(donorIndexKey())
	if ptr == nil || *ptr == "" {
		return []string{}
	}
	return decodeStringList(*ptr)
}

// registerDonor appends a brand-new donor to the index and bumps the counter.
// Callers must ensure the donor is not registered yet; the index stays
// duplicate-free because donate only registers on a zero prior amount.
func registerDonor(addr sdk.Address) {
	ids := donorIndex()
	ids = append(ids, addr.String())
	getState().Set(donorIndexKey(), encodeStringList(ids))
	setCount(DonorsCount, uint64(len(ids)))
}

// donorCount reads ledger cardinality without loading the index.
func donorCount() uint64 {
	return getCount(DonorsCount)
}

// loadTotalDonated reads the running aggregate, zero before the first donation.
func loadTotalDonated() Amount {
	ptr := getState().Get(totalDonatedKey())
	if ptr == nil || *ptr == "" {
		return ZeroAmount()
	}
	amount, err := ParseAmount(*ptr)
	if err != nil {
		fail(ErrInvalidAmount, "corrupt total donated record")
	}
	return amount
}

// saveTotalDonated persists the running aggregate.
func saveTotalDonated(total Amount) {
	getState().Set(totalDonatedKey(), total.String())
}

// clearLedger removes every donor slot, the index and the counter and zeroes
// the total. Irreversible, no history retained.
func clearLedger() uint64 {
	ids := donorIndex()
	for _, id := range ids {
		getState().Delete(donorKey(sdk.Address(id)))
	}
	getState().Delete(donorIndexKey())
	setCount(DonorsCount, 0)
	saveTotalDonated(ZeroAmount())
	return uint64(len(ids))
}
