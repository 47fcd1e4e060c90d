package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	require := require.New(t)

	valid := Config{
		APIBaseURL:  "http://127.0.0.1:8000",
		WSBaseURL:   "ws://127.0.0.1:8000",
		LogLevel:    "INFO",
		HTTPTimeout: 10 * time.Second,
		DialTimeout: 10 * time.Second,
	}
	require.NoError(valid.Validate())

	missingAPI := valid
	missingAPI.APIBaseURL = ""
	assert.Error(t, missingAPI.Validate())

	badTimeout := valid
	badTimeout.HTTPTimeout = 0
	assert.Error(t, badTimeout.Validate())
}
