//go:build !wasm

package sdk

// Host-build stand-ins for the wasm imports. They let the module compile and
// run outside the chain (local debugging, go test). Contract logic talks to
// these through the mockable seams in the contract package, so the dummies
// below only matter for quick manual runs.

import "fmt"

var hostState = map[string]string{}

func Log(s string) {
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic(msg)
}

func Revert(msg string, symbol string) {
	fmt.Println("SDK revert:", symbol, msg)
}

func StateSetObject(key string, value string) {
	hostState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := hostState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(hostState, key)
}

func GetEnv() Env {
	return decodeEnv(`{
		"msg.sender": "hive:localdev",
		"msg.required_auths": [],
		"msg.required_posting_auths": [],
		"tx.id": "local",
		"block.timestamp": "2025-01-01T00:00:00"
	}`)
}

func GetEnvKey(key string) *string {
	env := GetEnv()
	switch key {
	case "tx.id":
		return &env.TxId
	case "block.timestamp":
		return &env.Timestamp
	default:
		return nil
	}
}

func HiveDraw(amount string, asset Asset) {
	fmt.Println("SDK draw:", amount, asset.String())
}

func HiveTransfer(to Address, amount string, asset Asset) {
	fmt.Println("SDK transfer:", to.String(), amount, asset.String())
}
