//go:build wasm

////////////////////////////////////////////////////////////////////////////////
// Donation Box: a pass-through donation campaign for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "donation_box/contract"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Mutating entrypoints
// -----------------------------------------------------------------------------

//go:wasmexport contract_init
func contractInit(payload *string) *string {
	return contract.ContractInit(payload)
}

//go:wasmexport donate
func donate(payload *string) *string {
	return contract.Donate(payload)
}

//go:wasmexport change_beneficiary
func changeBeneficiary(payload *string) *string {
	return contract.ChangeBeneficiary(payload)
}

//go:wasmexport reset
func reset(payload *string) *string {
	return contract.Reset(payload)
}

// -----------------------------------------------------------------------------
// Read-only entrypoints
// -----------------------------------------------------------------------------

//go:wasmexport get_beneficiary
func getBeneficiary() *string {
	return contract.GetBeneficiary()
}

//go:wasmexport beneficiary_name
func beneficiaryName() *string {
	return contract.BeneficiaryName()
}

//go:wasmexport get_description
func getDescription() *string {
	return contract.GetDescription()
}

//go:wasmexport number_of_donors
func numberOfDonors() *string {
	return contract.NumberOfDonors()
}

//go:wasmexport get_donation_for_account
func getDonationForAccount(payload *string) *string {
	return contract.GetDonationForAccount(payload)
}

//go:wasmexport get_donations
func getDonations(payload *string) *string {
	return contract.GetDonations(payload)
}

//go:wasmexport get_total_donated
func getTotalDonated() *string {
	return contract.GetTotalDonated()
}

//go:wasmexport get_top_five_donors
func getTopFiveDonors() *string {
	return contract.GetTopFiveDonors()
}

//go:wasmexport get_donation_statistics
func getDonationStatistics() *string {
	return contract.GetDonationStatistics()
}

//go:wasmexport get_campaign
func getCampaign() *string {
	return contract.GetCampaign()
}
