package contract_test

import (
	"encoding/json"
	"testing"

	"donation_box/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractInitRunsOnce(t *testing.T) {
	h := setup(t)
	h.initCampaign()

	assert.Equal(t, beneficiaryAddress, *contract.GetBeneficiary())
	assert.Equal(t, "B", *contract.BeneficiaryName())
	assert.Equal(t, "d", *contract.GetDescription())

	h.as(controllerAddress)
	payload := `{"beneficiary":"hive:other","beneficiary_name":"O","description":"x"}`
	expectFailure(t, contract.ErrAlreadyInitialized, func() {
		contract.ContractInit(&payload)
	})
}

func TestContractInitValidatesPayload(t *testing.T) {
	h := setup(t)

	h.as(controllerAddress)
	empty := `{}`
	expectFailure(t, contract.ErrInvalidPayload, func() {
		contract.ContractInit(&empty)
	})

	h.as(controllerAddress)
	badAsset := `{"beneficiary":"hive:bob","asset":"dogecoin"}`
	expectFailure(t, contract.ErrInvalidPayload, func() {
		contract.ContractInit(&badAsset)
	})
}

func TestCampaignAssetIsFixedAtInit(t *testing.T) {
	h := setup(t)
	h.as(controllerAddress)
	payload := `{"beneficiary":"hive:bob","beneficiary_name":"B","description":"d","asset":"hbd"}`
	require.NotNil(t, contract.ContractInit(&payload))

	// hbd intents are accepted...
	h.as("hive:a1", tokenIntent("2000", "hbd"))
	res := contract.Donate(nil)
	require.NotNil(t, res)
	assert.Equal(t, "2000", *res)

	// ...hive intents are not
	h.as("hive:a2", hiveIntent("2000"))
	expectFailure(t, contract.ErrInvalidAmount, func() {
		contract.Donate(nil)
	})
}

func TestChangeBeneficiaryControllerOnly(t *testing.T) {
	h := setup(t)
	h.initCampaign()
	h.donate("hive:a1", "2000")

	payload := `{"beneficiary":"hive:carol","beneficiary_name":"Carol","description":"new"}`

	h.as("hive:intruder")
	expectFailure(t, contract.ErrUnauthorized, func() {
		contract.ChangeBeneficiary(&payload)
	})

	// the beneficiary itself holds no special power either
	h.as(beneficiaryAddress)
	expectFailure(t, contract.ErrUnauthorized, func() {
		contract.ChangeBeneficiary(&payload)
	})

	h.as(controllerAddress)
	require.NotNil(t, contract.ChangeBeneficiary(&payload))

	assert.Equal(t, "hive:carol", *contract.GetBeneficiary())
	assert.Equal(t, "Carol", *contract.BeneficiaryName())
	assert.Equal(t, "new", *contract.GetDescription())

	// ledger and total stay untouched
	assert.Equal(t, "1", *contract.NumberOfDonors())
	assert.Equal(t, "2000", *contract.GetTotalDonated())

	// subsequent donations go to the new beneficiary
	h.donate("hive:a1", "300")
	last := h.sdk.Transfers[len(h.sdk.Transfers)-1]
	assert.Equal(t, "hive:carol", last.To.String())
}

func TestResetClearsLedger(t *testing.T) {
	h := setup(t)
	h.initCampaign()
	h.donate("hive:a1", "2000")
	h.donate("hive:a2", "3000")

	h.as("hive:intruder")
	expectFailure(t, contract.ErrUnauthorized, func() {
		contract.Reset(nil)
	})

	h.as(controllerAddress)
	require.NotNil(t, contract.Reset(nil))

	assert.Equal(t, "0", *contract.NumberOfDonors())
	assert.Equal(t, "0", *contract.GetTotalDonated())
	assert.Empty(t, donationList(t, contract.GetDonations(nil)))

	// campaign identity survives a reset
	assert.Equal(t, beneficiaryAddress, *contract.GetBeneficiary())

	// only config, total and counter slots remain, donor slots are gone
	assert.Equal(t, 3, h.state.Len())
}

func TestPrivilegedCallsRequireInitialization(t *testing.T) {
	h := setup(t)

	payload := `{"beneficiary":"hive:carol"}`
	h.as(controllerAddress)
	expectFailure(t, contract.ErrNotInitialized, func() {
		contract.ChangeBeneficiary(&payload)
	})

	h.as(controllerAddress)
	expectFailure(t, contract.ErrNotInitialized, func() {
		contract.Reset(nil)
	})
}

func TestGetCampaignSnapshot(t *testing.T) {
	h := setup(t)
	h.initCampaign()
	h.donate("hive:a1", "1100")

	raw := contract.GetCampaign()
	require.NotNil(t, raw)
	var view struct {
		Beneficiary     string `json:"beneficiary"`
		BeneficiaryName string `json:"beneficiary_name"`
		Description     string `json:"description"`
		Asset           string `json:"asset"`
		TotalDonors     uint64 `json:"total_donors"`
		TotalDonated    string `json:"total_donated"`
	}
	require.NoError(t, json.Unmarshal([]byte(*raw), &view))
	assert.Equal(t, beneficiaryAddress, view.Beneficiary)
	assert.Equal(t, "B", view.BeneficiaryName)
	assert.Equal(t, "d", view.Description)
	assert.Equal(t, "hive", view.Asset)
	assert.Equal(t, uint64(1), view.TotalDonors)
	assert.Equal(t, "1100", view.TotalDonated)
}
