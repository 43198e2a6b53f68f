package company

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/testutil"
	"github.com/thenoetrevino/applyboard/internal/testutil/cli"
)

func TestListCompanies(t *testing.T) {
	db, testApp := cli.SetupCLITest(t)

	acme := cli.CreateTestCompany(t, db, "Acme", models.StatusInterview)
	cli.CreateTestCompany(t, db, "Globex", models.StatusApplied)
	// Someone else's company must never show up
	testutil.CreateTestCompany(t, db, "other-user", "Hidden Corp", models.StatusApplied)

	t.Run("Human-readable table", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Acme")
		assert.Contains(t, output, "Globex")
		assert.NotContains(t, output, "Hidden Corp")
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		companies := result["companies"].([]interface{})
		assert.Len(t, companies, 2)
	})

	t.Run("Filter by status", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--status", "interview", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, acme, strings.TrimSpace(output))
	})

	t.Run("Filter by column title", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--status", "Applied", "--json"})
		require.NoError(t, err)
		companies := cli.ParseJSON(t, output)["companies"].([]interface{})
		require.Len(t, companies, 1)
		assert.Equal(t, "Globex", companies[0].(map[string]interface{})["name"])
	})
}

func TestListCompanies_Empty(t *testing.T) {
	_, testApp := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, testApp, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No companies yet")

	output, err = cli.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Empty(t, cli.ParseJSON(t, output)["companies"])
}

func TestShowCompany(t *testing.T) {
	db, testApp := cli.SetupCLITest(t)
	id := cli.CreateTestCompany(t, db, "Acme", models.StatusApplied)

	t.Run("Human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{id})
		require.NoError(t, err)
		assert.Contains(t, output, "Acme")
		assert.Contains(t, output, "Applied")
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{id, "--json"})
		require.NoError(t, err)
		company := cli.ParseJSON(t, output)["company"].(map[string]interface{})
		assert.Equal(t, id, company["id"])
	})

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"missing", "--json"})
		require.Error(t, err)
		assert.Equal(t, 3, cli.ExitCode(err))
	})

	t.Run("Another user's company is not found", func(t *testing.T) {
		other := testutil.CreateTestCompany(t, db, "other-user", "Hidden Corp", models.StatusApplied)
		_, err := cli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{other, "--json"})
		require.Error(t, err)
		assert.Equal(t, 3, cli.ExitCode(err))
	})
}

func TestUpdateCompany(t *testing.T) {
	db, testApp := cli.SetupCLITest(t)
	ctx := context.Background()
	id := cli.CreateTestCompany(t, db, "Acme", models.StatusApplied)

	t.Run("Only passed fields change", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{
			id, "--deadline", "2026-12-01", "--description", "Build **rockets**", "--quiet",
		})
		require.NoError(t, err)

		got, err := testApp.CompanyService.GetCompany(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, "2026-12-01", got.Deadline)
		assert.Equal(t, "Build **rockets**", got.Description)
		assert.Equal(t, models.StatusApplied, got.Status)
	})

	t.Run("Replace and clear sections", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{
			id, "--section", "Why us=Because", "--section", "About me[50]=Short", "--quiet",
		})
		require.NoError(t, err)
		got, err := testApp.CompanyService.GetCompany(ctx, id)
		require.NoError(t, err)
		require.Len(t, got.CoverLetterSections, 2)
		assert.Equal(t, "About me", got.CoverLetterSections[1].Title)

		_, err = cli.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--clear-sections", "--quiet"})
		require.NoError(t, err)
		got, err = testApp.CompanyService.GetCompany(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, got.CoverLetterSections)
	})

	t.Run("No flags is a usage error", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--json"})
		require.Error(t, err)
		assert.Equal(t, 2, cli.ExitCode(err))
	})

	t.Run("Invalid link", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--link", "javascript:alert(1)", "--json"})
		require.Error(t, err)
		assert.Equal(t, 5, cli.ExitCode(err))
		assert.False(t, cli.ParseJSON(t, output)["success"].(bool))
	})

	t.Run("Unknown company", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{"missing", "--name", "X", "--json"})
		require.Error(t, err)
		assert.Equal(t, 3, cli.ExitCode(err))
	})
}

func TestMoveCompany(t *testing.T) {
	db, testApp := cli.SetupCLITest(t)
	id := cli.CreateTestCompany(t, db, "Acme", models.StatusApplied)

	output, err := cli.ExecuteCLICommand(t, testApp, MoveCmd(), []string{id, "Aptitude Test", "--json"})
	require.NoError(t, err)
	company := cli.ParseJSON(t, output)["company"].(map[string]interface{})
	assert.Equal(t, "aptitude", company["status"])

	t.Run("Same column is a no-op", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, MoveCmd(), []string{id, "aptitude"})
		require.NoError(t, err)
		assert.Contains(t, output, "already in")
	})

	t.Run("Invalid status", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, MoveCmd(), []string{id, "hired", "--json"})
		require.Error(t, err)
		assert.Equal(t, 5, cli.ExitCode(err))
	})
}

func TestDeleteCompany(t *testing.T) {
	db, testApp := cli.SetupCLITest(t)
	id := cli.CreateTestCompany(t, db, "Acme", models.StatusApplied)

	output, err := cli.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{id, "--json"})
	require.NoError(t, err)
	deleted := cli.ParseJSON(t, output)["deleted"].(map[string]interface{})
	assert.Equal(t, id, deleted["id"])

	_, err = testApp.CompanyService.GetCompany(context.Background(), id)
	assert.Error(t, err)

	t.Run("Deleting twice", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{id, "--force", "--json"})
		require.Error(t, err)
		assert.Equal(t, 3, cli.ExitCode(err))
	})
}
