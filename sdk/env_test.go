package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnv(t *testing.T) {
	env := decodeEnv(`{
		"contract.id": "contract:donationbox",
		"tx.id": "abc123",
		"tx.index": 3,
		"tx.op_index": 1,
		"block.id": "block9",
		"block.height": 4200,
		"block.timestamp": "2025-01-01T00:00:00",
		"msg.sender": "hive:alice",
		"msg.required_auths": ["hive:alice"],
		"msg.required_posting_auths": [],
		"intents": [
			{"type": "transfer.allow", "args": {"limit": "1100", "token": "hive"}}
		]
	}`)

	assert.Equal(t, "contract:donationbox", env.ContractId)
	assert.Equal(t, "abc123", env.TxId)
	assert.Equal(t, int64(3), env.Index)
	assert.Equal(t, int64(1), env.OpIndex)
	assert.Equal(t, uint64(4200), env.BlockHeight)
	assert.Equal(t, Address("hive:alice"), env.Sender.Address)
	assert.Equal(t, []Address{"hive:alice"}, env.Sender.RequiredAuths)
	require.Len(t, env.Intents, 1)
	assert.Equal(t, "transfer.allow", env.Intents[0].Type)
	assert.Equal(t, "1100", env.Intents[0].Args["limit"])
}

func TestDecodeEnvToleratesGarbage(t *testing.T) {
	env := decodeEnv("not json at all")
	assert.Equal(t, Address(""), env.Sender.Address)
	assert.Empty(t, env.Intents)
}

func TestAddressClassification(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:donationbox").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:burn").Domain())

	assert.Equal(t, AddressTypeHive, Address("hive:alice").Type())
	assert.Equal(t, AddressTypeEVM, Address("did:pkh:eip155:1:0xabc").Type())
	assert.True(t, Address("hive:alice").IsValid())
	assert.False(t, Address("b.testnet").IsValid())
}
