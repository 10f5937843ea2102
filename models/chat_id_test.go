package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatID_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		id   ChatID
		want string
	}{
		{"numeric id", ChatInt(1117431), "1117431"},
		{"negative group id", ChatInt(-1001234567890), "-1001234567890"},
		{"channel username", ChatString("@durov"), `"@durov"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestChatID_UnmarshalJSON(t *testing.T) {
	var numeric ChatID
	require.NoError(t, Unmarshal([]byte("1117431"), &numeric))
	assert.Equal(t, int64(1117431), numeric.ID)
	assert.Empty(t, numeric.Username)

	var named ChatID
	require.NoError(t, Unmarshal([]byte(`"@durov"`), &named))
	assert.Equal(t, "@durov", named.Username)
	assert.Zero(t, named.ID)
}

func TestChatID_IsZero(t *testing.T) {
	assert.True(t, ChatID{}.IsZero())
	assert.False(t, ChatInt(1).IsZero())
	assert.False(t, ChatString("@durov").IsZero())
}

func TestChatID_String(t *testing.T) {
	assert.Equal(t, "1117431", ChatInt(1117431).String())
	assert.Equal(t, "@durov", ChatString("@durov").String())
}
