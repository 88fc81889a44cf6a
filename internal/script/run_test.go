package script

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/memory"
	"github.com/mesh-intelligence/contacts/internal/registry"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func runScript(t *testing.T, src string) (Summary, []Result, error) {
	t.Helper()
	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	reg := registry.New(memory.NewStore(), zap.NewNop())
	var out bytes.Buffer
	sum, runErr := Run(reg, ops, &out, zap.NewNop())

	var results []Result
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var r Result
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		results = append(results, r)
	}
	require.NoError(t, scanner.Err())
	return sum, results, runErr
}

func TestRunDemoScenario(t *testing.T) {
	src := `{"op":"create","contact":{"id":1,"userDetails":{"id":1,"firstname":"Alice","lastname":"W."},"phoneNumber":"123456789"}}
{"op":"update","id":1,"contact":{"id":1,"userDetails":{"id":1,"firstname":"Alice","lastname":"Wonderland"},"phoneNumber":"123456789"}}
{"op":"list"}
`
	sum, results, err := runScript(t, src)
	require.NoError(t, err)
	assert.Equal(t, Summary{Applied: 3}, sum)
	require.Len(t, results, 3)

	list := results[2]
	require.NotNil(t, list.Contacts)
	require.Len(t, *list.Contacts, 1)
	assert.Equal(t, "Wonderland", (*list.Contacts)[0].UserDetails.Lastname)
}

func TestRunRecordsRuleViolations(t *testing.T) {
	src := `{"op":"create","contact":{"id":1,"phoneNumber":"111"}}
{"op":"create","contact":{"id":2,"phoneNumber":"111"}}
{"op":"create","contact":{"id":1,"phoneNumber":"222"}}
{"op":"update","id":1,"contact":{"id":2,"phoneNumber":"111"}}
{"op":"delete","phoneNumber":"999"}
{"op":"get","id":1}
{"op":"delete","id":1}
{"op":"list"}
`
	sum, results, err := runScript(t, src)
	require.NoError(t, err)
	assert.Equal(t, Summary{Applied: 4, Failed: 4}, sum)
	require.Len(t, results, 8)

	assert.Empty(t, results[0].Error)
	assert.Equal(t, "mobile contact with phone number 111 already exists", results[1].Error)
	assert.Equal(t, "mobile contact with id 1 already exists", results[2].Error)
	assert.Equal(t, "mobile contact with id 1 not found", results[3].Error)
	assert.Equal(t, "mobile contact with phone number 999 not found", results[4].Error)

	require.NotNil(t, results[5].Contact)
	assert.Equal(t, "111", results[5].Contact.PhoneNumber)

	assert.Equal(t, 7, results[6].Line)
	require.NotNil(t, results[7].Contacts)
	assert.Empty(t, *results[7].Contacts)
}

// brokenRegistry fails lists with a fault that is not a rule violation.
type brokenRegistry struct{ types.Registry }

func (brokenRegistry) GetAll() ([]types.MobileContact, error) {
	return nil, assert.AnError
}

func TestRunStopsOnStoreFailure(t *testing.T) {
	ops, err := Parse(strings.NewReader("{\"op\":\"list\"}\n{\"op\":\"list\"}\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	sum, err := Run(brokenRegistry{}, ops, &out, nil)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "line 1")
	assert.Equal(t, Summary{}, sum)
	assert.Empty(t, out.String())
}
