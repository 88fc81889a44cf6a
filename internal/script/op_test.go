package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `# seed
{"op":"create","contact":{"id":1,"userDetails":{"id":1,"firstname":"Alice","lastname":"W."},"phoneNumber":"123456789"}}

{"op":"update","id":1,"contact":{"id":1,"userDetails":{"id":1,"firstname":"Alice","lastname":"Wonderland"},"phoneNumber":"123456789"}}
{"op":"get","phoneNumber":"123456789"}
{"op":"delete","id":1}
{"op":"list"}
`
	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, ops, 5)

	assert.Equal(t, OpCreate, ops[0].Name)
	assert.Equal(t, 2, ops[0].Line)
	assert.Equal(t, "Alice", ops[0].Contact.UserDetails.Firstname)

	assert.Equal(t, OpUpdate, ops[1].Name)
	assert.Equal(t, 4, ops[1].Line)
	require.NotNil(t, ops[1].ID)
	assert.Equal(t, int64(1), *ops[1].ID)

	require.NotNil(t, ops[2].PhoneNumber)
	assert.Equal(t, "123456789", *ops[2].PhoneNumber)
	assert.Nil(t, ops[2].ID)

	assert.Equal(t, OpList, ops[4].Name)
	assert.Equal(t, 7, ops[4].Line)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "malformed json",
			src:     "{\"op\":\"list\"}\n{not json}\n",
			wantMsg: "line 2:",
		},
		{
			name:    "unknown field",
			src:     `{"op":"list","limit":10}`,
			wantMsg: "line 1:",
		},
		{
			name:    "unknown op",
			src:     `{"op":"upsert"}`,
			wantErr: ErrUnknownOp,
		},
		{
			name:    "create without contact",
			src:     `{"op":"create"}`,
			wantErr: ErrMissingContact,
		},
		{
			name:    "update without id",
			src:     `{"op":"update","contact":{"id":1}}`,
			wantErr: ErrMissingID,
		},
		{
			name:    "update without contact",
			src:     `{"op":"update","id":1}`,
			wantErr: ErrMissingContact,
		},
		{
			name:    "delete with both keys",
			src:     `{"op":"delete","id":1,"phoneNumber":"1"}`,
			wantErr: ErrKeyChoice,
		},
		{
			name:    "get with no key",
			src:     `{"op":"get"}`,
			wantErr: ErrKeyChoice,
		},
		{
			name:    "second value on one line",
			src:     "{\"op\":\"create\",\"contact\":{\"id\":1}}\n{\"op\":\"list\"} {\"op\":\"delete\",\"id\":1}\n",
			wantErr: ErrTrailingData,
			wantMsg: "line 2:",
		},
		{
			name:    "stray brace after value",
			src:     `{"op":"list"}}`,
			wantErr: ErrTrailingData,
		},
		{
			name:    "list with id",
			src:     `{"op":"list","id":5}`,
			wantErr: ErrExtraField,
		},
		{
			name:    "create with id",
			src:     `{"op":"create","id":1,"contact":{"id":1}}`,
			wantErr: ErrExtraField,
		},
		{
			name:    "update with phone number",
			src:     `{"op":"update","id":1,"phoneNumber":"1","contact":{"id":1}}`,
			wantErr: ErrExtraField,
		},
		{
			name:    "delete with contact",
			src:     `{"op":"delete","id":1,"contact":{"id":1}}`,
			wantErr: ErrExtraField,
		},
		{
			name:    "line over size limit",
			src:     "{\"op\":\"list\"}\n" + strings.Repeat(" ", maxLineSize+1) + "\n",
			wantMsg: "line 2:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Nil(t, ops)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	ops, err := Parse(strings.NewReader("\n# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestParseLongLine(t *testing.T) {
	lastname := strings.Repeat("x", 70*1024)
	src := `{"op":"create","contact":{"id":1,"phoneNumber":"1","userDetails":{"id":1,"firstname":"A","lastname":"` +
		lastname + `"}}}` + "\n"

	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, lastname, ops[0].Contact.UserDetails.Lastname)
}
