package startup

import (
	"io"
	"os"
	"testing"

	"github.com/gorilla/mux"

	"media-collector/internal/logging"
)

func quietLogs(t *testing.T) {
	t.Helper()
	logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(nil) })
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	// Check that all fields are populated
	if info.Version == "" {
		t.Error("Expected Version to be set")
	}
	if info.GoVersion == "" {
		t.Error("Expected GoVersion to be set")
	}
	if info.OS == "" {
		t.Error("Expected OS to be set")
	}
	if info.Arch == "" {
		t.Error("Expected Arch to be set")
	}

	// Verify that runtime values are correct
	if info.GoVersion != GoVersion {
		t.Errorf("Expected GoVersion=%s, got %s", GoVersion, info.GoVersion)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
		setEnv       bool
	}{
		{
			name:         "Returns default when env var not set",
			key:          "TEST_UNSET_VAR",
			defaultValue: "default",
			want:         "default",
			setEnv:       false,
		},
		{
			name:         "Returns env value when set",
			key:          "TEST_SET_VAR",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
			setEnv:       true,
		},
		{
			name:         "Returns default when env var is empty",
			key:          "TEST_EMPTY_VAR",
			defaultValue: "default",
			envValue:     "",
			want:         "default",
			setEnv:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			} else {
				// Ensure the variable is not set
				os.Unsetenv(tt.key)
				t.Cleanup(func() {
					os.Unsetenv(tt.key)
				})
			}

			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	quietLogs(t)

	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		want         bool
	}{
		{"unset keeps default true", "", true, true},
		{"unset keeps default false", "", false, false},
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"one", "1", false, true},
		{"zero", "0", true, false},
		{"upper TRUE", "TRUE", false, true},
		{"invalid keeps default", "not-a-bool", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.envValue)
			if got := getEnvBool("TEST_BOOL", tt.defaultValue); got != tt.want {
				t.Errorf("getEnvBool(%q) = %v, want %v", tt.envValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	quietLogs(t)

	tests := []struct {
		name     string
		envValue string
		want     int
	}{
		{"unset", "", 1000},
		{"valid", "25", 25},
		{"negative passes through", "-1", -1},
		{"invalid keeps default", "lots", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.envValue)
			if got := getEnvInt("TEST_INT", 1000); got != tt.want {
				t.Errorf("getEnvInt(%q) = %d, want %d", tt.envValue, got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	quietLogs(t)

	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, c *Config) {
				if c.Port != DefaultPort || c.MetricsPort != DefaultMetricsPort {
					t.Errorf("ports = %s/%s", c.Port, c.MetricsPort)
				}
				if !c.MetricsEnabled || !c.LogHealthChecks {
					t.Errorf("MetricsEnabled = %v, LogHealthChecks = %v", c.MetricsEnabled, c.LogHealthChecks)
				}
				if c.MaxRequestPaths != DefaultMaxRequestPaths {
					t.Errorf("MaxRequestPaths = %d", c.MaxRequestPaths)
				}
				if c.CollectWorkers < 1 {
					t.Errorf("CollectWorkers = %d", c.CollectWorkers)
				}
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"PORT":              "3000",
				"METRICS_PORT":      "3001",
				"LOG_HEALTH_CHECKS": "false",
				"MAX_REQUEST_PATHS": "5",
				"COLLECT_WORKERS":   "7",
			},
			check: func(t *testing.T, c *Config) {
				if c.Port != "3000" || c.MetricsPort != "3001" {
					t.Errorf("ports = %s/%s", c.Port, c.MetricsPort)
				}
				if c.LogHealthChecks {
					t.Error("LogHealthChecks should be false")
				}
				if c.MaxRequestPaths != 5 {
					t.Errorf("MaxRequestPaths = %d, want 5", c.MaxRequestPaths)
				}
				if c.CollectWorkers != 7 {
					t.Errorf("CollectWorkers = %d, want 7", c.CollectWorkers)
				}
			},
		},
		{
			name: "non-positive path cap falls back",
			env:  map[string]string{"MAX_REQUEST_PATHS": "0"},
			check: func(t *testing.T, c *Config) {
				if c.MaxRequestPaths != DefaultMaxRequestPaths {
					t.Errorf("MaxRequestPaths = %d", c.MaxRequestPaths)
				}
			},
		},
		{
			name: "same port allowed when metrics disabled",
			env:  map[string]string{"PORT": "8080", "METRICS_PORT": "8080", "METRICS_ENABLED": "false"},
			check: func(t *testing.T, c *Config) {
				if c.MetricsEnabled {
					t.Error("MetricsEnabled should be false")
				}
			},
		},
		{name: "invalid port", env: map[string]string{"PORT": "http"}, wantErr: true},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}, wantErr: true},
		{name: "metrics port clash", env: map[string]string{"PORT": "9000", "METRICS_PORT": "9000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "METRICS_PORT", "METRICS_ENABLED", "LOG_HEALTH_CHECKS", "MAX_REQUEST_PATHS", "COLLECT_WORKERS"} {
				t.Setenv(key, tt.env[key])
			}

			config, err := LoadConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("LoadConfig() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, config)
		})
	}
}

func TestGetRoutes(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/collect", nil).Methods("POST").Name("collect")
	router.HandleFunc("/health", nil).Methods("GET", "HEAD")
	router.HandleFunc("/version", nil)

	routes, err := GetRoutes(router)
	if err != nil {
		t.Fatalf("GetRoutes() error = %v", err)
	}

	want := []RouteInfo{
		{Method: "POST", Path: "/api/collect", Name: "collect"},
		{Method: "GET", Path: "/health"},
		{Method: "HEAD", Path: "/health"},
		{Method: "*", Path: "/version"},
	}
	if len(routes) != len(want) {
		t.Fatalf("GetRoutes() returned %d routes, want %d: %+v", len(routes), len(want), routes)
	}
	for i := range want {
		if routes[i] != want[i] {
			t.Errorf("route[%d] = %+v, want %+v", i, routes[i], want[i])
		}
	}
}

func TestGetRouteGroup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", ""},
		{"/health", "health"},
		{"/api/collect", "api/collect"},
		{"/api/collect/{id}", "api/collect"},
		{"/api", "api"},
	}

	for _, tt := range tests {
		if got := getRouteGroup(tt.path); got != tt.want {
			t.Errorf("getRouteGroup(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestValidatePort(t *testing.T) {
	for _, port := range []string{"1", "8080", "65535"} {
		if err := validatePort(port); err != nil {
			t.Errorf("validatePort(%q) error = %v", port, err)
		}
	}
	for _, port := range []string{"", "0", "-5", "65536", "eighty"} {
		if err := validatePort(port); err == nil {
			t.Errorf("validatePort(%q) expected error", port)
		}
	}
}
