package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/testutil/cli"
)

func TestStats(t *testing.T) {
	db, testApp := cli.SetupCLITest(t)
	cli.CreateTestCompany(t, db, "A", models.StatusPending)
	cli.CreateTestCompany(t, db, "B", models.StatusInterview)
	cli.CreateTestCompany(t, db, "C", models.StatusPassed)
	cli.CreateTestCompany(t, db, "D", models.StatusRejected)
	cli.CreateTestCompany(t, db, "E", models.StatusRejected)

	t.Run("JSON", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, StatsCmd(), []string{"--json"})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)["stats"].(map[string]interface{})
		summary := result["summary"].(map[string]interface{})
		assert.Equal(t, float64(5), summary["total"])
		assert.Equal(t, float64(1), summary["active"])
		assert.Equal(t, float64(33), summary["successRate"])

		stages := result["stages"].([]interface{})
		require.Len(t, stages, 6)
		assert.Equal(t, float64(2), stages[5].(map[string]interface{})["count"])
	})

	t.Run("Human-readable", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, StatsCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Total: 5")
		assert.Contains(t, output, "Success rate: 33%")
		assert.Contains(t, output, "Aptitude Test")
	})

	t.Run("Quiet prints the total", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, testApp, StatsCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "5\n", output)
	})
}

func TestBar(t *testing.T) {
	assert.Equal(t, barWidth, len([]rune(bar(3, 0))))
	assert.Equal(t, barWidth, len([]rune(bar(1, 2))))
	assert.Equal(t, "██████████████████████████████", bar(2, 2))
}
