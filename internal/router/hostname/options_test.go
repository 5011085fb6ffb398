package hostname_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simman/go-hostroute/internal/router"
	"github.com/simman/go-hostroute/internal/router/hostname"
)

func TestFromOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		options      map[string]any
		wantHosts    []string
		wantDefaults router.Params
	}{
		{
			name:         "single host",
			options:      map[string]any{"host": "abc.test"},
			wantHosts:    []string{"abc.test"},
			wantDefaults: router.Params{},
		},
		{
			name:         "host list",
			options:      map[string]any{"hosts": []any{"abc.test", "def.test"}},
			wantHosts:    []string{"abc.test", "def.test"},
			wantDefaults: router.Params{},
		},
		{
			name:         "typed host list",
			options:      map[string]any{"hosts": []string{"abc.test"}},
			wantHosts:    []string{"abc.test"},
			wantDefaults: router.Params{},
		},
		{
			name:         "empty host list",
			options:      map[string]any{"hosts": []any{}},
			wantHosts:    []string{},
			wantDefaults: router.Params{},
		},
		{
			name:         "hosts wins over host",
			options:      map[string]any{"host": 42, "hosts": []any{"abc.test"}},
			wantHosts:    []string{"abc.test"},
			wantDefaults: router.Params{},
		},
		{
			name: "with defaults",
			options: map[string]any{
				"host":     "abc.test",
				"defaults": map[string]any{"section": "docs", "page": 1},
			},
			wantHosts:    []string{"abc.test"},
			wantDefaults: router.Params{"section": "docs", "page": 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			route, err := hostname.FromOptions(tt.options)
			require.NoError(t, err)
			require.Equal(t, tt.wantHosts, route.Hosts())
			require.Equal(t, tt.wantDefaults, route.Defaults())
		})
	}
}

func TestFromOptions_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options map[string]any
		wantKey string
		wantMsg string
	}{
		{
			name:    "nil options",
			options: nil,
			wantKey: "host",
			wantMsg: `one of config keys "host" or "hosts" is required`,
		},
		{
			name:    "neither host nor hosts",
			options: map[string]any{"defaults": map[string]any{}},
			wantKey: "host",
			wantMsg: `one of config keys "host" or "hosts" is required`,
		},
		{
			name:    "hosts is a string",
			options: map[string]any{"hosts": "abc.test"},
			wantKey: "hosts",
			wantMsg: `the config key "hosts" must be an array`,
		},
		{
			name:    "hosts is null",
			options: map[string]any{"hosts": nil},
			wantKey: "hosts",
			wantMsg: `the config key "hosts" must be an array`,
		},
		{
			name:    "hosts holds a number",
			options: map[string]any{"hosts": []any{"abc.test", 7}},
			wantKey: "hosts",
			wantMsg: `the config key "hosts" must be an array`,
		},
		{
			name:    "host is a number",
			options: map[string]any{"host": 7},
			wantKey: "host",
			wantMsg: `the config key "host" must be a string`,
		},
		{
			name:    "host is a list",
			options: map[string]any{"host": []any{"abc.test"}},
			wantKey: "host",
			wantMsg: `the config key "host" must be a string`,
		},
		{
			name:    "defaults is a string",
			options: map[string]any{"host": "abc.test", "defaults": "x"},
			wantKey: "defaults",
			wantMsg: `the optional config key "defaults" must be an array, if available`,
		},
		{
			name:    "defaults is null",
			options: map[string]any{"host": "abc.test", "defaults": nil},
			wantKey: "defaults",
			wantMsg: `the optional config key "defaults" must be an array, if available`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			route, err := hostname.FromOptions(tt.options)
			require.Nil(t, route)
			require.Error(t, err)
			require.True(t, hostname.IsConfigurationError(err))

			var ce *hostname.ConfigurationError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, tt.wantKey, ce.Key)
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()

	route, err := hostname.Factory(map[string]any{"host": "abc.test"})
	require.NoError(t, err)
	require.IsType(t, &hostname.Route{}, route)

	route, err = hostname.Factory(map[string]any{})
	require.Error(t, err)
	require.Nil(t, route)
}
