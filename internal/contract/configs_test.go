package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/talentview/schema"
)

// validInput returns a raw input that passes all validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		APIBaseURL: "https://api.example.com/",
		APIToken:   "tok",
		Cycle:      "2025.1",
		Status:     "all",
		Band:       "all",
		Sort:       "alphabetical",
		Limit:      50,
		Precision:  1,
		Output:     "text",
		Color:      "yes",
	}
}

// TestProcessAndValidate tests the happy path and the per-field failures.
func TestProcessAndValidate(t *testing.T) {
	t.Run("valid input populates config", func(t *testing.T) {
		cfg := &Config{}
		err := ProcessAndValidate(cfg, validInput())
		require.NoError(t, err)

		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL, "trailing slash is trimmed")
		assert.Equal(t, "2025.1", cfg.Cycle)
		assert.Equal(t, StatusWildcard, cfg.StatusFilter)
		assert.Equal(t, schema.AllBands, cfg.Band)
		assert.Equal(t, schema.AlphabeticalOrder, cfg.Sort)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.True(t, cfg.UseColors)
		assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
		assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	})

	t.Run("durations are parsed", func(t *testing.T) {
		input := validInput()
		input.CacheTTL = "45s"
		input.HTTPTimeout = "30s"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 45*time.Second, cfg.CacheTTL)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})

	t.Run("zero cache TTL is allowed", func(t *testing.T) {
		input := validInput()
		input.CacheTTL = "0s"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	})

	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"missing api url", func(i *ConfigRawInput) { i.APIBaseURL = "" }},
		{"relative api url", func(i *ConfigRawInput) { i.APIBaseURL = "api.example.com" }},
		{"zero limit", func(i *ConfigRawInput) { i.Limit = 0 }},
		{"limit above maximum", func(i *ConfigRawInput) { i.Limit = MaxResultLimit + 1 }},
		{"unknown status", func(i *ConfigRawInput) { i.Status = "elite" }},
		{"unknown band", func(i *ConfigRawInput) { i.Band = "elite" }},
		{"unknown sort", func(i *ConfigRawInput) { i.Sort = "random" }},
		{"precision out of range", func(i *ConfigRawInput) { i.Precision = 3 }},
		{"unknown output", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"bad color flag", func(i *ConfigRawInput) { i.Color = "maybe" }},
		{"bad cache ttl", func(i *ConfigRawInput) { i.CacheTTL = "soon" }},
		{"negative cache ttl", func(i *ConfigRawInput) { i.CacheTTL = "-5s" }},
		{"zero timeout", func(i *ConfigRawInput) { i.HTTPTimeout = "0s" }},
		{"unknown snapshot backend", func(i *ConfigRawInput) { i.SnapshotBackend = "oracle" }},
		{"mysql backend without connect", func(i *ConfigRawInput) { i.SnapshotBackend = "mysql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}

	t.Run("empty snapshot backend disables tracking", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, schema.DatabaseBackend(""), cfg.SnapshotBackend)
	})

	t.Run("case-insensitive enums", func(t *testing.T) {
		input := validInput()
		input.Status = "HIGH"
		input.Band = "Medium"
		input.Sort = "HIGHEST_SCORE"
		input.Output = "JSON"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, "high", cfg.StatusFilter)
		assert.Equal(t, schema.MediumBand, cfg.Band)
		assert.Equal(t, schema.HighestScoreOrder, cfg.Sort)
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})
}

// TestValidateDatabaseConnectionString tests per-backend connection string rules.
func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", false},
		{"none needs nothing", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/talentview", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass/talentview", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=talentview", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestClone tests that clones are independent copies.
func TestClone(t *testing.T) {
	cfg := &Config{Cycle: "2025.1", ResultLimit: 50}
	clone := cfg.Clone()
	clone.Cycle = "2025.2"
	assert.Equal(t, "2025.1", cfg.Cycle)
	assert.Equal(t, 50, clone.ResultLimit)
}
