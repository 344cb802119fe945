package cfgm_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"
)

type serverConfig struct {
	Host    string        `json:"host"`
	Port    int           `json:"port"`
	URL     string        `json:"url"`
	Timeout time.Duration `json:"timeout"`
}

type testConfig struct {
	Name   string       `json:"name"`
	Debug  bool         `json:"debug"`
	Tags   []string     `json:"tags"`
	Server serverConfig `json:"server"`
}

func defaultTestConfig() testConfig {
	return testConfig{
		Name: "app",
		Server: serverConfig{
			Host:    "localhost",
			Port:    8080,
			URL:     "http://${server.host}:${server.port}",
			Timeout: 15 * time.Second,
		},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(filepath.Join(t.TempDir(), "none.yaml")))
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.Name)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.Server.URL)
}

func TestLoad_FileLayers(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "name: svc\nserver:\n  host: example.com\n  timeout: 1m\ntags: [a, b]\n",
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"name":"svc","server":{"host":"example.com","timeout":"1m"},"tags":["a","b"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths("missing.yaml", path))
			require.NoError(t, err)

			assert.Equal(t, "svc", cfg.Name)
			assert.Equal(t, time.Minute, cfg.Server.Timeout)
			assert.Equal(t, 8080, cfg.Server.Port, "keys absent from the file keep their defaults")
			assert.Equal(t, []string{"a", "b"}, cfg.Tags)
			assert.Equal(t, "http://example.com:8080", cfg.Server.URL)
		})
	}
}

func TestLoad_EnvPrefix(t *testing.T) {
	path := writeFile(t, "config.yaml", "server:\n  port: 9000\n")
	t.Setenv("CFGM_TEST_SERVER_PORT", "9100")
	t.Setenv("CFGM_TEST_SERVER_TIMEOUT", "5s")
	t.Setenv("CFGM_TEST_DEBUG", "true")

	cfg, err := cfgm.Load(defaultTestConfig(),
		cfgm.WithConfigPaths(path),
		cfgm.WithEnvPrefix("CFGM_TEST_"),
	)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "http://localhost:9100", cfg.Server.URL)
}

func TestLoadCmd_FlagsWin(t *testing.T) {
	t.Setenv("CFGM_FLAG_SERVER_HOST", "env.example")

	var cfg *testConfig
	cmd := &cli.Command{
		Name: "app",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server-host"},
			&cli.IntFlag{Name: "server-port"},
			&cli.DurationFlag{Name: "server-timeout"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			cfg, err = cfgm.LoadCmd(cmd, defaultTestConfig(), "",
				cfgm.WithConfigPaths(filepath.Join(t.TempDir(), "none.yaml")),
				cfgm.WithEnvPrefix("CFGM_FLAG_"),
			)

			return err
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"app", "--server-host", "flag.example", "--server-timeout", "2s"}))
	require.NotNil(t, cfg)

	assert.Equal(t, "flag.example", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port, "unset flags do not override")
	assert.Equal(t, 2*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "http://flag.example:8080", cfg.Server.URL)
}

func TestLoad_TemplateExpansion(t *testing.T) {
	t.Setenv("CFGM_TEST_HOST", "env.example")
	content := "server:\n  host: ${CFGM_TEST_HOST}\n  url: ${CFGM_TEST_URL_UNSET:-https://fallback}\n"

	t.Run("enabled", func(t *testing.T) {
		path := writeFile(t, "config.yaml", content)

		cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
		require.NoError(t, err)
		assert.Equal(t, "env.example", cfg.Server.Host)
		assert.Equal(t, "https://fallback", cfg.Server.URL)
	})

	t.Run("disabled", func(t *testing.T) {
		path := writeFile(t, "config.yaml", content)

		cfg, err := cfgm.Load(defaultTestConfig(),
			cfgm.WithConfigPaths(path),
			cfgm.WithoutTemplateExpansion(),
			cfgm.WithoutSelfReferences(),
		)
		require.NoError(t, err)
		assert.Equal(t, "${CFGM_TEST_HOST}", cfg.Server.Host)
	})

	t.Run("strict", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "name: ${CFGM_TEST_NAME_UNSET}\n")

		_, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path), cfgm.WithStrictTemplates())
		require.ErrorIs(t, err, placeholder.ErrUnresolvable)
		assert.Contains(t, err.Error(), path)
	})
}

func TestLoad_SelfReferences(t *testing.T) {
	t.Run("unresolved kept", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "name: ${cfgm.test.unknown}\n")

		cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
		require.NoError(t, err)
		assert.Equal(t, "${cfgm.test.unknown}", cfg.Name)
	})

	t.Run("default value", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "name: ${server.missing:-${server.host}}\n")

		cfg, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Name)
	})

	t.Run("circular", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "name: ${server.host}\nserver:\n  host: ${name}\n")

		_, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
		require.ErrorIs(t, err, placeholder.ErrCircularReference)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg, err := cfgm.Load(defaultTestConfig(),
			cfgm.WithConfigPaths(filepath.Join(t.TempDir(), "none.yaml")),
			cfgm.WithoutSelfReferences(),
		)
		require.NoError(t, err)
		assert.Equal(t, "http://${server.host}:${server.port}", cfg.Server.URL)
	})
}

func TestLoad_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "list root", file: "config.yaml", content: "- a\n- b\n"},
		{name: "bad json", file: "config.json", content: "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := cfgm.Load(defaultTestConfig(), cfgm.WithConfigPaths(path))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse config file")
		})
	}
}

func TestMustLoadCmd_Panics(t *testing.T) {
	path := writeFile(t, "config.yaml", "- a\n")
	cmd := &cli.Command{Name: "app"}

	assert.Panics(t, func() {
		cfgm.MustLoadCmd(cmd, defaultTestConfig(), "", cfgm.WithConfigPaths(path))
	})
}

func TestDefaultPaths(t *testing.T) {
	paths := cfgm.DefaultPaths("placeholder")

	assert.Equal(t, ".placeholder.yaml", paths[0])
	assert.Contains(t, paths, "/etc/placeholder/config.yaml")
	assert.Equal(t, []string{"config.yaml", "config/config.yaml"}, paths[len(paths)-2:])
}

func TestLoad_EnvCommaList(t *testing.T) {
	type listConfig struct {
		Ports []int    `json:"ports"`
		Hosts []string `json:"hosts"`
	}
	t.Setenv("CFGM_LIST_PORTS", "80,443")
	t.Setenv("CFGM_LIST_HOSTS", "a,b")

	cfg, err := cfgm.Load(listConfig{},
		cfgm.WithConfigPaths(filepath.Join(t.TempDir(), "none.yaml")),
		cfgm.WithEnvPrefix("CFGM_LIST_"),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{80, 443}, cfg.Ports)
	assert.Equal(t, []string{"a", "b"}, cfg.Hosts)
}
