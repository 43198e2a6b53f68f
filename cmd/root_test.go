package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := []string{"board", "company", "column", "stats", "calendar", "settings", "login", "logout", "whoami"}

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "missing subcommand %q", name)
	}
}
