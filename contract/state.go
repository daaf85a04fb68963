package contract

import "donation_box/sdk"

// State is the persistence seam over the host kv storage.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// WasmState routes straight to the host db imports.
type WasmState struct{}

func (WasmState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}

// singleton state used everywhere
var state State = WasmState{}

// InitState picks the storage backend; localDebug swaps in the in-memory mock.
func InitState(localDebug bool) {
	if localDebug {
		state = NewMockState()
	} else {
		state = WasmState{}
	}
}

// UseState injects a specific backend, mainly for tests.
func UseState(s State) {
	state = s
}

func getState() State {
	return state
}

// stateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func stateSetIfChanged(key, value string) {
	if existing := getState().Get(key); existing != nil && *existing == value {
		return
	}
	getState().Set(key, value)
}
