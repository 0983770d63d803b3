package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2024-01-08")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-08"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-08"`), &parsed))
	assert.Equal(t, "2024-01-08", parsed.String())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-08", d.String())

	require.NoError(t, d.Scan("2024-02-09"))
	assert.Equal(t, "2024-02-09", d.String())

	assert.Error(t, d.Scan(42))
}
