package contract

import (
	"strings"

	"donation_box/sdk"
)

// StorageCostUnits is the fixed fee deducted from a donor's first contribution
// to offset the marginal storage of their ledger slot, in base units of the
// campaign asset (1000 units = 1.000 on a 3-decimal asset).
const StorageCostUnits = 1000

// StorageCost returns the registration fee as an Amount.
func StorageCost() Amount {
	return AmountFromUint64(StorageCostUnits)
}

// CampaignConfig is the single persisted campaign record: who controls the
// contract, where donations go and how the campaign presents itself.
type CampaignConfig struct {
	Controller      sdk.Address
	Beneficiary     sdk.Address
	BeneficiaryName string
	Description     string
	Asset           sdk.Asset
}

type InitArgs struct {
	Beneficiary     string
	BeneficiaryName string
	Description     string
	Asset           string
}

type BeneficiaryArgs struct {
	Beneficiary     string
	BeneficiaryName string
	Description     string
}

func addressField(s string) sdk.Address {
	return sdk.Address(strings.TrimSpace(s))
}

func assetField(s string) sdk.Asset {
	return sdk.Asset(strings.TrimSpace(s))
}

// -----------------------------------------------------------------------------
// Campaign state persistence
// -----------------------------------------------------------------------------

// isContractInitialized returns true once contract_init has run.
func isContractInitialized() bool {
	ptr := getState().Get(campaignConfigKey())
	return ptr != nil && *ptr != ""
}

// requireInitialized rejects calls that arrive before contract_init.
func requireInitialized() {
	if !isContractInitialized() {
		fail(ErrNotInitialized, "contract not initialized")
	}
}

// loadCampaignConfig loads the campaign record from state.
func loadCampaignConfig() *CampaignConfig {
	ptr := getState().Get(campaignConfigKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeCampaignConfig(*ptr)
}

// saveCampaignConfig stores the campaign record to state.
func saveCampaignConfig(cfg *CampaignConfig) {
	stateSetIfChanged(campaignConfigKey(), encodeCampaignConfig(cfg))
}

// requireController rejects privileged calls from anyone but the address that
// ran contract_init.
func requireController(cfg *CampaignConfig) {
	if getSenderAddress() != cfg.Controller {
		fail(ErrUnauthorized, "caller is not the campaign controller")
	}
}

// -----------------------------------------------------------------------------
// Mutating entrypoints
// -----------------------------------------------------------------------------

// ContractInit creates the campaign: empty ledger, zero total, the sender
// becomes the controller. Must be the first mutating call and only runs once.
// Payload: {"beneficiary":"hive:bob","beneficiary_name":"Bob","description":"...","asset":"hive"}
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		fail(ErrAlreadyInitialized, "contract already initialized")
	}
	args, err := decodeInitArgs(unwrapPayload(payload, "init payload required"))
	if err != nil {
		fail(ErrInvalidPayload, "invalid init payload: "+err.Error())
	}
	beneficiary := addressField(args.Beneficiary)
	if beneficiary == "" {
		fail(ErrInvalidPayload, "beneficiary required")
	}
	asset := sdk.AssetHive
	if args.Asset != "" {
		if !isValidAsset(args.Asset) {
			fail(ErrInvalidPayload, "unsupported campaign asset: "+args.Asset)
		}
		asset = assetField(args.Asset)
	}

	cfg := CampaignConfig{
		Controller:      getSenderAddress(),
		Beneficiary:     beneficiary,
		BeneficiaryName: args.BeneficiaryName,
		Description:     args.Description,
		Asset:           asset,
	}
	saveCampaignConfig(&cfg)
	saveTotalDonated(ZeroAmount())

	emitInitEvent(cfg.Controller.String(), cfg.Beneficiary.String())
	return strptr("campaign initialized")
}

// ChangeBeneficiary rewrites the three descriptive fields. Controller only;
// the ledger and the running total are untouched.
// Payload: {"beneficiary":"hive:carol","beneficiary_name":"Carol","description":"..."}
func ChangeBeneficiary(payload *string) *string {
	requireInitialized()
	cfg := loadCampaignConfig()
	requireController(cfg)

	args, err := decodeBeneficiaryArgs(unwrapPayload(payload, "beneficiary payload required"))
	if err != nil {
		fail(ErrInvalidPayload, "invalid beneficiary payload: "+err.Error())
	}
	beneficiary := addressField(args.Beneficiary)
	if beneficiary == "" {
		fail(ErrInvalidPayload, "beneficiary required")
	}

	old := cfg.Beneficiary
	cfg.Beneficiary = beneficiary
	cfg.BeneficiaryName = args.BeneficiaryName
	cfg.Description = args.Description
	saveCampaignConfig(cfg)

	emitBeneficiaryChangedEvent(old.String(), beneficiary.String())
	return strptr("beneficiary updated")
}

// Reset clears the whole donor ledger and zeroes the total. Controller only,
// irreversible; a previously seen donor is a brand-new donor afterwards.
func Reset(_ *string) *string {
	requireInitialized()
	cfg := loadCampaignConfig()
	requireController(cfg)

	cleared := clearLedger()

	emitResetEvent(getSenderAddress().String(), cleared)
	return strptr("campaign reset")
}
