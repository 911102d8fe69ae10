package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/config"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files fstest.MapFS, environ map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	loader := config.NewLoader(mockLogger)
	loader.FS = config.NewMapFSAdapter("/work", files)
	if environ == nil {
		environ = map[string]string{}
	}
	loader.Environ = environ
	return loader
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{}, nil)

	settings, err := loader.Load("/work/app")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBaseURL, settings.BaseURL)
	assert.Equal(t, domain.DefaultPageSize, settings.PageSize)
	assert.Equal(t, domain.DefaultHTTPTimeout, settings.Timeout)
	assert.True(t, settings.RefetchOnInvalidate)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Zero(t, settings.StaleAfter)
}

func TestLoader_Load_WalksUp(t *testing.T) {
	files := fstest.MapFS{
		domain.ConfigFileName: {Data: []byte(`
version: "1"
api:
  baseURL: https://crm.example.com/api/
  timeout: 5s
  rateLimit: 4
list:
  pageSize: 25
cache:
  staleAfter: 2m
  refetchOnInvalidate: false
log:
  level: DEBUG
  json: true
metrics:
  addr: ":9090"
`)},
		"app/nested/.keep": {Data: []byte{}},
	}
	loader := newLoader(t, files, nil)

	path, err := loader.DiscoverConfigPath("/work/app/nested")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", domain.ConfigFileName), path)

	settings, err := loader.Load("/work/app/nested")
	require.NoError(t, err)

	assert.Equal(t, "https://crm.example.com/api", settings.BaseURL)
	assert.Equal(t, 5*time.Second, settings.Timeout)
	assert.InDelta(t, 4.0, settings.RateLimit, 0.001)
	assert.Equal(t, 25, settings.PageSize)
	assert.Equal(t, 2*time.Minute, settings.StaleAfter)
	assert.False(t, settings.RefetchOnInvalidate)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.True(t, settings.LogJSON)
	assert.Equal(t, ":9090", settings.MetricsAddr)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	files := fstest.MapFS{
		domain.ConfigFileName: {Data: []byte("api:\n  baseURL: https://file.example.com\nlist:\n  pageSize: 25\n")},
	}
	loader := newLoader(t, files, map[string]string{
		"CRMADMIN_BASE_URL":    "https://env.example.com",
		"CRMADMIN_TOKEN":       "secret",
		"CRMADMIN_PAGE_SIZE":   "50",
		"CRMADMIN_TIMEOUT":     "10s",
		"CRMADMIN_LOG_JSON":    "true",
		"CRMADMIN_STALE_AFTER": "30s",
		"UNRELATED":            "x",
	})

	settings, err := loader.Load("/work")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", settings.BaseURL)
	assert.Equal(t, "secret", settings.Token)
	assert.Equal(t, 50, settings.PageSize)
	assert.Equal(t, 10*time.Second, settings.Timeout)
	assert.True(t, settings.LogJSON)
	assert.Equal(t, 30*time.Second, settings.StaleAfter)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		environ     map[string]string
		errContains string
	}{
		{
			name:        "malformed yaml",
			file:        "api: [unclosed",
			errContains: "failed to parse config file",
		},
		{
			name:        "page size too large",
			file:        "list:\n  pageSize: 500\n",
			errContains: "PageSize must be at most 100",
		},
		{
			name:        "relative base url",
			file:        "api:\n  baseURL: not-a-url\n",
			errContains: "BaseURL must be an absolute URL",
		},
		{
			name:        "unknown log level",
			file:        "log:\n  level: loud\n",
			errContains: "LogLevel must be one of",
		},
		{
			name:        "bad env duration",
			file:        "version: \"1\"\n",
			environ:     map[string]string{"CRMADMIN_TIMEOUT": "soon"},
			errContains: "failed to parse environment overrides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := fstest.MapFS{domain.ConfigFileName: {Data: []byte(tt.file)}}
			loader := newLoader(t, files, tt.environ)

			_, err := loader.Load("/work")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoader_Load_RealFilesystem(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.ConfigFileName),
		[]byte("list:\n  pageSize: 20\n"),
		0o600,
	))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	loader.Environ = map[string]string{}

	settings, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 20, settings.PageSize)
}

func TestLoader_Load_TokenInFileWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	loader := config.NewLoader(mockLogger)
	loader.FS = config.NewMapFSAdapter("/work", fstest.MapFS{
		domain.ConfigFileName: {Data: []byte("api:\n  token: abc\n")},
	})
	loader.Environ = map[string]string{}

	settings, err := loader.Load("/work")
	require.NoError(t, err)
	assert.Equal(t, "abc", settings.Token)
}
