package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/assetdeploy/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionListUnmarshal(t *testing.T) {
	t.Run("accepts a JSON array", func(t *testing.T) {
		var req dto.AddFieldRequest
		err := json.Unmarshal([]byte(`{"name":"Device","fieldType":"dropdown","options":["Laptop"," Desktop ","Tablet"]}`), &req)
		require.NoError(t, err)
		assert.Equal(t, dto.OptionList{"Laptop", "Desktop", "Tablet"}, req.Options)
	})

	t.Run("accepts a comma separated string", func(t *testing.T) {
		var req dto.AddFieldRequest
		err := json.Unmarshal([]byte(`{"name":"Device","fieldType":"dropdown","options":"Laptop, Desktop,Tablet"}`), &req)
		require.NoError(t, err)
		assert.Equal(t, dto.OptionList{"Laptop", "Desktop", "Tablet"}, req.Options)
	})

	t.Run("blank string yields no options", func(t *testing.T) {
		var req dto.AddFieldRequest
		err := json.Unmarshal([]byte(`{"name":"Device","options":"   "}`), &req)
		require.NoError(t, err)
		assert.Empty(t, req.Options)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var req dto.AddFieldRequest
		err := json.Unmarshal([]byte(`{"name":"Device","options":42}`), &req)
		assert.Error(t, err)
	})
}
