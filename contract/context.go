package contract

import "donation_box/sdk"

// cachedEnv/cachedPayment are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh the env snapshot and drop memoized
// data so subsequent helper calls all see the same state.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedPayment   *AttachedPayment
	paymentResolved bool
)

func resetEnvCache() {
	cachedEnvLoaded = false
	cachedPayment = nil
	paymentResolved = false
}

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := envInterface.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = envInterface.GetEnv()
		cachedEnvLoaded = true
		cachedPayment = nil
		paymentResolved = false
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// AttachedPayment is the money the sender authorized for this call, extracted
// from the first transfer.allow intent.
type AttachedPayment struct {
	Amount Amount
	Token  sdk.Asset
}

var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
}

func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// attachedPayment scans the current intents for the first transfer.allow entry
// and parses its limit as base units. Returns nil when the caller attached
// nothing; aborts on malformed intents. The cached result is cleared whenever
// currentEnv() detects a new transaction.
func attachedPayment() *AttachedPayment {
	if paymentResolved {
		return cachedPayment
	}
	for _, intent := range currentEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := intent.Args["token"]
		if !isValidAsset(token) {
			fail(ErrInvalidAmount, "unsupported intent asset: "+token)
		}
		amount, err := ParseAmount(intent.Args["limit"])
		if err != nil {
			fail(ErrInvalidAmount, "invalid intent limit: "+intent.Args["limit"])
		}
		cachedPayment = &AttachedPayment{Amount: amount, Token: sdk.Asset(token)}
		break
	}
	paymentResolved = true
	return cachedPayment
}
