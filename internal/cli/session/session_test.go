package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/applyboard/internal/testutil"
	"github.com/thenoetrevino/applyboard/internal/testutil/cli"
)

func setupHome(t *testing.T, secret string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPLYBOARD_SECRET", secret)
	t.Setenv("APPLYBOARD_TOKEN", "")
	t.Setenv("APPLYBOARD_DB", "")
}

func run(t *testing.T, cmdArgs ...string) (string, error) {
	t.Helper()
	var cmdErr error
	root := LoginCmd()
	switch cmdArgs[0] {
	case "logout":
		root = LogoutCmd()
	case "whoami":
		root = WhoamiCmd()
	}
	cli.SetupCobraCommand(root, cmdArgs[1:])
	out := testutil.CaptureOutput(t, func() {
		cmdErr = root.Execute()
	})
	return out, cmdErr
}

func TestLoginWhoamiLogout(t *testing.T) {
	setupHome(t, "test-secret")

	output, err := run(t, "login", "--user", "alice", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", output)

	output, err = run(t, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", output)

	_, err = run(t, "logout", "--quiet")
	require.NoError(t, err)

	_, err = run(t, "whoami", "--json")
	require.Error(t, err)
	assert.Equal(t, 3, cli.ExitCode(err))
}

func TestLogin_RequiresUserAndSecret(t *testing.T) {
	setupHome(t, "")

	_, err := run(t, "login", "--json")
	require.Error(t, err)
	assert.Equal(t, 2, cli.ExitCode(err))

	output, err := run(t, "login", "--user", "alice", "--json")
	require.Error(t, err)
	assert.Equal(t, 2, cli.ExitCode(err))
	assert.Contains(t, output, "NO_SECRET")
}

func TestWhoami_WrongSecret(t *testing.T) {
	setupHome(t, "first-secret")
	_, err := run(t, "login", "--user", "alice", "--quiet")
	require.NoError(t, err)

	t.Setenv("APPLYBOARD_SECRET", "rotated")
	_, err = run(t, "whoami", "--json")
	require.Error(t, err)
	assert.Equal(t, 3, cli.ExitCode(err))
}

func TestLogin_PrintToken(t *testing.T) {
	setupHome(t, "test-secret")

	output, err := run(t, "login", "--user", "bob", "--print-token")
	require.NoError(t, err)
	token := output[:len(output)-1]

	// A token in the environment wins over the saved file
	_, err = run(t, "logout", "--quiet")
	require.NoError(t, err)
	t.Setenv("APPLYBOARD_TOKEN", token)

	output, err = run(t, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "bob\n", output)
}
