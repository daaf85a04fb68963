package contract_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"donation_box/contract"
	"donation_box/sdk"

	"github.com/stretchr/testify/require"
)

const (
	controllerAddress  = "hive:campaignowner"
	beneficiaryAddress = "hive:beneficiary"
	defaultTimestamp   = "2025-01-01T00:00:00"
)

var txCounter int

// harness bundles the mock seams for one test.
type harness struct {
	t     *testing.T
	state *contract.MockState
	env   *contract.MockENV
	sdk   *contract.MockSDK
}

// setup wires fresh mocks into the contract package.
func setup(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		state: contract.NewMockState(),
		env:   &contract.MockENV{},
		sdk:   &contract.MockSDK{},
	}
	contract.UseState(h.state)
	contract.UseSDK(h.sdk)
	contract.UseEnv(h.env)
	return h
}

// as points the mock env at a new transaction from the given sender.
func (h *harness) as(sender string, intents ...sdk.Intent) {
	txCounter++
	h.env.Env = sdk.Env{
		ContractId: "contract:donationbox",
		TxId:       fmt.Sprintf("tx-%d", txCounter),
		Timestamp:  defaultTimestamp,
		Sender:     sdk.Sender{Address: sdk.Address(sender)},
		Intents:    intents,
	}
}

// hiveIntent builds the transfer.allow intent carrying the attached payment.
func hiveIntent(limit string) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": "hive"},
	}
}

func tokenIntent(limit, token string) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}
}

// initCampaign runs contract_init with the default fixture campaign.
func (h *harness) initCampaign() {
	h.t.Helper()
	h.as(controllerAddress)
	payload := fmt.Sprintf(
		`{"beneficiary":%q,"beneficiary_name":"B","description":"d"}`,
		beneficiaryAddress,
	)
	res := contract.ContractInit(&payload)
	require.NotNil(h.t, res)
}

// donate sends one donation and returns the donor's new cumulative total.
func (h *harness) donate(sender, limit string) string {
	h.t.Helper()
	h.as(sender, hiveIntent(limit))
	res := contract.Donate(nil)
	require.NotNil(h.t, res)
	return *res
}

// expectFailure asserts that fn reverts with the given symbol.
func expectFailure(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %s, got none", symbol)
		cerr, ok := r.(*contract.ContractError)
		require.True(t, ok, "unexpected panic value: %v", r)
		require.Equal(t, symbol, cerr.Symbol)
	}()
	fn()
}

// donationList decodes a get_donations / get_top_five_donors result.
func donationList(t *testing.T, raw *string) []struct {
	AccountId string `json:"account_id"`
	Amount    string `json:"amount"`
} {
	t.Helper()
	require.NotNil(t, raw)
	var list []struct {
		AccountId string `json:"account_id"`
		Amount    string `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(*raw), &list))
	return list
}
