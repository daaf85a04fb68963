package contract

// Donate records a contribution and forwards it to the beneficiary.
//
// The attached payment is the first transfer.allow intent of the transaction.
// First contact from a donor must exceed the storage cost; the cost is
// deducted from the forwarded amount only, while the donor's cumulative total
// and the campaign total always grow by the full attached amount. The
// outbound transfer is fire-and-forget: the ledger keeps the donation
// recorded even if settlement later fails at the host layer.
//
// Returns the donor's new cumulative total as a decimal string.
func Donate(_ *string) *string {
	requireInitialized()
	cfg := loadCampaignConfig()
	donor := getSenderAddress()

	pay := attachedPayment()
	if pay == nil {
		fail(ErrInvalidAmount, "donation requires an attached transfer.allow intent")
	}
	if pay.Token != cfg.Asset {
		fail(ErrInvalidAmount, "campaign accepts "+cfg.Asset.String()+", got "+pay.Token.String())
	}
	if pay.Amount.IsZero() {
		fail(ErrInvalidAmount, "donation must be greater than zero")
	}

	prior := getDonation(donor)
	transferAmount := pay.Amount
	firstDonation := prior.IsZero()
	if firstDonation {
		// new donors fund their own ledger slot; the remainder must be positive
		remainder, err := pay.Amount.Sub(StorageCost())
		if err != nil || remainder.IsZero() {
			fail(ErrInsufficientForStorage,
				"first donation must exceed the storage cost of "+StorageCost().String())
		}
		transferAmount = remainder
	}

	// all preconditions hold, state writes start here
	sdkInterface.Draw(pay.Amount, cfg.Asset)

	newTotal := prior.Add(pay.Amount)
	setDonation(donor, newTotal)
	if firstDonation {
		registerDonor(donor)
	}
	saveTotalDonated(loadTotalDonated().Add(pay.Amount))

	sdkInterface.Transfer(cfg.Beneficiary, transferAmount, cfg.Asset)

	emitDonationEvent(donor.String(), pay.Amount, transferAmount)
	return strptr(newTotal.String())
}
