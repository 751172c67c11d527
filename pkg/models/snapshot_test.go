package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "Should accept string", input: `"C123"`, want: "C123"},
		{name: "Should accept snowflake number", input: `812345678901234567`, want: "812345678901234567"},
		{name: "Should accept null", input: `null`, want: ""},
		{name: "Should reject negative number", input: `-5`, wantErr: true},
		{name: "Should reject float", input: `1.5`, wantErr: true},
		{name: "Should reject object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}{A: "42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"42","b":null}`, string(data))
}

func TestEpochTime_UnmarshalJSON(t *testing.T) {
	var e EpochTime
	require.NoError(t, json.Unmarshal([]byte(`1700000000.9`), &e))
	assert.Equal(t, EpochTime(1700000000), e)

	require.NoError(t, json.Unmarshal([]byte(`null`), &e))
	assert.Equal(t, EpochTime(0), e)

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &e))
	assert.Error(t, json.Unmarshal([]byte(`-1`), &e))
}
