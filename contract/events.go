package contract

import (
	"fmt"
	"strconv"
)

// emitInitEvent leaves an "in" line so explorers can spot fresh campaigns.
func emitInitEvent(controller string, beneficiary string) {
	sdkInterface.Log(fmt.Sprintf(
		"in|by:%s|to:%s",
		controller,
		beneficiary,
	))
}

// emitDonationEvent logs attached and forwarded amounts so indexers can replay
// the storage-cost math from logs alone.
func emitDonationEvent(donor string, attached Amount, forwarded Amount) {
	sdkInterface.Log(fmt.Sprintf(
		"dn|by:%s|am:%s|fw:%s",
		donor,
		attached.String(),
		forwarded.String(),
	))
}

// emitBeneficiaryChangedEvent spells out the flip so auditors can track it.
func emitBeneficiaryChangedEvent(oldAddr string, newAddr string) {
	sdkInterface.Log(fmt.Sprintf(
		"bc|old:%s|new:%s",
		oldAddr,
		newAddr,
	))
}

// emitResetEvent notes who wiped the ledger and how many donors went with it.
func emitResetEvent(by string, clearedDonors uint64) {
	sdkInterface.Log(fmt.Sprintf(
		"rs|by:%s|n:%s",
		by,
		strconv.FormatUint(clearedDonors, 10),
	))
}
