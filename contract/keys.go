package contract

import "donation_box/sdk"

// Storage key prefixes. Single-byte prefixes keep keys compact and make the
// layout greppable in raw state dumps.
const (
	// kCampaignConfig stores the encoded CampaignConfig record.
	kCampaignConfig byte = 0x01
	// kTotalDonated holds the running campaign-wide donation total.
	kTotalDonated byte = 0x02
	// kDonor houses one cumulative amount per donor address.
	kDonor byte = 0x10
	// kDonorIndex keeps the insertion-ordered list of donor addresses.
	kDonorIndex byte = 0x11
)

// DonorsCount holds an integer counter for registered donors.
const DonorsCount = "count:donors"

// campaignConfigKey is the single slot the campaign record lives under.
func campaignConfigKey() string {
	return string([]byte{kCampaignConfig})
}

// totalDonatedKey addresses the aggregate total counter.
func totalDonatedKey() string {
	return string([]byte{kTotalDonated})
}

// donorKey mixes the prefix with raw address bytes so each donor gets one slot.
func donorKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kDonor)
	buf = append(buf, addrStr...)
	return string(buf)
}

// donorIndexKey addresses the insertion-order index list.
func donorIndexKey() string {
	return string([]byte{kDonorIndex})
}
