//go:build !wasm

////////////////////////////////////////////////////////////////////////////////
// Donation Box: a pass-through donation campaign for the vsc network
// Host build: wires the mock seams for a quick local smoke run.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"

	"donation_box/contract"
)

func main() {
	contract.UseState(contract.NewPersistentMockState("state.json"))
	contract.InitHost(true) // mock env + sdk

	if res := contract.GetCampaign(); res != nil {
		fmt.Println("campaign:", *res)
	}
}
