package contract

import (
	"fmt"

	"donation_box/sdk"
)

// ENVInterface is the seam over the host execution environment.
type ENVInterface interface {
	GetEnv() sdk.Env
	GetEnvKey(key string) *string
}

// SDKInterface covers the host effects an entrypoint may trigger: diagnostics,
// reverts and fund movement. Transfer is fire-and-forget; the ledger does not
// roll back if settlement later fails at the host layer.
type SDKInterface interface {
	Log(msg string)
	Revert(msg string, symbol string)
	Draw(amount Amount, asset sdk.Asset)
	Transfer(to sdk.Address, amount Amount, asset sdk.Asset)
}

// RealENV reads the live wasm environment.
type RealENV struct{}

func (RealENV) GetEnv() sdk.Env {
	return sdk.GetEnv()
}

func (RealENV) GetEnvKey(key string) *string {
	return sdk.GetEnvKey(key)
}

// RealSDK forwards to the actual host imports.
type RealSDK struct{}

func (RealSDK) Log(msg string) {
	sdk.Log(msg)
}

func (RealSDK) Revert(msg string, symbol string) {
	sdk.Revert(msg, symbol)
}

func (RealSDK) Draw(amount Amount, asset sdk.Asset) {
	sdk.HiveDraw(amount.String(), asset)
}

func (RealSDK) Transfer(to sdk.Address, amount Amount, asset sdk.Asset) {
	sdk.HiveTransfer(to, amount.String(), asset)
}

// globals behind the seams
var (
	envInterface ENVInterface = RealENV{}
	sdkInterface SDKInterface = RealSDK{}
)

// InitHost selects real host bindings or the mocks for local debugging.
func InitHost(localDebug bool) {
	if localDebug {
		envInterface = &MockENV{Env: defaultMockEnv()}
		sdkInterface = &MockSDK{}
	} else {
		envInterface = RealENV{}
		sdkInterface = RealSDK{}
	}
}

// UseEnv injects an environment implementation, mainly for tests.
func UseEnv(e ENVInterface) {
	envInterface = e
	resetEnvCache()
}

// UseSDK injects an effects implementation, mainly for tests.
func UseSDK(s SDKInterface) {
	sdkInterface = s
}

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockENV serves a canned Env; tests mutate the struct between calls.
type MockENV struct {
	Env sdk.Env
}

func (m *MockENV) GetEnv() sdk.Env {
	return m.Env
}

func (m *MockENV) GetEnvKey(key string) *string {
	switch key {
	case "tx.id":
		return &m.Env.TxId
	case "block.timestamp":
		return &m.Env.Timestamp
	default:
		return nil
	}
}

func defaultMockEnv() sdk.Env {
	return sdk.Env{
		ContractId: "contract:donationbox",
		TxId:       "tx-0",
		BlockId:    "block-0",
		Timestamp:  "2025-01-01T00:00:00",
		Sender:     sdk.Sender{Address: "hive:localdev"},
	}
}

// FundMove records one Draw or Transfer issued through the MockSDK.
type FundMove struct {
	To     sdk.Address
	Amount string
	Asset  sdk.Asset
}

// MockSDK records every host effect so tests can assert on them.
type MockSDK struct {
	Logs      []string
	Reverts   []string
	Draws     []FundMove
	Transfers []FundMove
}

func (m *MockSDK) Log(msg string) {
	m.Logs = append(m.Logs, msg)
	fmt.Println("MOCK LOG:", msg)
}

func (m *MockSDK) Revert(msg string, symbol string) {
	m.Reverts = append(m.Reverts, symbol+": "+msg)
}

func (m *MockSDK) Draw(amount Amount, asset sdk.Asset) {
	m.Draws = append(m.Draws, FundMove{Amount: amount.String(), Asset: asset})
}

func (m *MockSDK) Transfer(to sdk.Address, amount Amount, asset sdk.Asset) {
	m.Transfers = append(m.Transfers, FundMove{To: to, Amount: amount.String(), Asset: asset})
}
