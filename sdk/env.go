package sdk

import "encoding/json"

// Intent is an authorization the sender attached to the transaction,
// e.g. transfer.allow with limit+token args.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the per-transaction execution environment snapshot handed over by the host.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Intents     []Intent
}

// envBlob mirrors the flat JSON keys of the host env document.
type envBlob struct {
	ContractId           string   `json:"contract.id"`
	TxId                 string   `json:"tx.id"`
	Index                int64    `json:"tx.index"`
	OpIndex              int64    `json:"tx.op_index"`
	BlockId              string   `json:"block.id"`
	BlockHeight          uint64   `json:"block.height"`
	Timestamp            string   `json:"block.timestamp"`
	Sender               string   `json:"msg.sender"`
	RequiredAuths        []string `json:"msg.required_auths"`
	RequiredPostingAuths []string `json:"msg.required_posting_auths"`
	Intents              []Intent `json:"intents"`
}

// decodeEnv maps the raw host JSON blob into an Env struct.
func decodeEnv(raw string) Env {
	var blob envBlob
	json.Unmarshal([]byte(raw), &blob)

	requiredAuths := make([]Address, 0, len(blob.RequiredAuths))
	for _, auth := range blob.RequiredAuths {
		requiredAuths = append(requiredAuths, Address(auth))
	}
	requiredPostingAuths := make([]Address, 0, len(blob.RequiredPostingAuths))
	for _, auth := range blob.RequiredPostingAuths {
		requiredPostingAuths = append(requiredPostingAuths, Address(auth))
	}

	return Env{
		ContractId:  blob.ContractId,
		TxId:        blob.TxId,
		Index:       blob.Index,
		OpIndex:     blob.OpIndex,
		BlockId:     blob.BlockId,
		BlockHeight: blob.BlockHeight,
		Timestamp:   blob.Timestamp,
		Sender: Sender{
			Address:              Address(blob.Sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		},
		Intents: blob.Intents,
	}
}
