package get_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command"
	"github.com/lwmacct/251207-go-pkg-placeholder/internal/command/get"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/placeholder"
	"github.com/lwmacct/251207-go-pkg-placeholder/pkg/propres"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := command.NewRoot("placeholder", "", get.NewCommand())
	app.Writer = &out
	app.ErrWriter = io.Discard

	base := []string{"placeholder", "--sources-env=false", "-f", filepath.Join("testdata", "props.json")}
	err := app.Run(context.Background(), append(base, args...))

	return out.String(), err
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "nested", args: []string{"get", "db.url"}, want: "postgres://db.local/app\n"},
		{name: "number", args: []string{"get", "db.pool"}, want: "5\n"},
		{name: "prop wins", args: []string{"get", "-p", "db.host=other", "db.url"}, want: "postgres://other/app\n"},
		{name: "default", args: []string{"get", "--default", "none", "db.user"}, want: "none\n"},
		{name: "empty default", args: []string{"get", "--default", "", "db.user"}, want: "\n"},
		{name: "require present", args: []string{"get", "-r", "db.host", "db.pool"}, want: "5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGet_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, err := run(t, "get", "db.user")
		require.ErrorIs(t, err, propres.ErrPropertyNotFound)
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := run(t, "get", "-r", "db.user", "-r", "db.password", "db.host")

		var mpe *propres.MissingPropertiesError
		require.ErrorAs(t, err, &mpe)
		assert.Equal(t, []string{"db.user", "db.password"}, mpe.Keys)
	})

	t.Run("strict nested", func(t *testing.T) {
		_, err := run(t, "--placeholder-strict", "get", "-p", "a=${b}", "a")
		require.ErrorIs(t, err, placeholder.ErrUnresolvable)
	})

	t.Run("no key", func(t *testing.T) {
		_, err := run(t, "get")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one KEY")
	})
}
