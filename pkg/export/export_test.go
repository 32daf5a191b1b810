package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/powerplan/core/model"
)

func TestWriteJSON(t *testing.T) {
	plan := model.Plan{{Name: "windpark2", Power: 21.6}, {Name: "gasfiredbig2", Power: 368.4}}
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, plan))

	var got model.Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, plan, got)
}

func TestWriteCSV(t *testing.T) {
	plan := model.Plan{{Name: "windpark2", Power: 21.6}, {Name: "tj1", Power: 0}}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, plan))

	assert.Equal(t, "name,power_mw\nwindpark2,21.6\ntj1,0\n", buf.String())
}
