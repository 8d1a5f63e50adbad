package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-admin-api/models"
	"cafe-admin-api/output"
	"cafe-admin-api/stats"
)

func TestTransitionsCommand(t *testing.T) {
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"transitions"})
	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "Order lifecycle")
	assert.Contains(t, out, "pending → [preparing cancelled]")
	assert.Contains(t, out, "delivered (terminal)")
}

func TestPrintDashboard(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "o1", CustomerName: "Ada", TableNumber: "4", Status: models.StatusPending, TotalAmount: 10, CreatedAt: models.NewTimestamp(now)},
		{ID: "o2", CustomerName: "Grace", TableNumber: "2", Status: models.StatusDelivered, TotalAmount: 20, CreatedAt: models.NewTimestamp(now.Add(-time.Hour))},
	}
	d := stats.Build(stats.Input{Orders: orders}, now, stats.DefaultDailyTarget)

	var buf bytes.Buffer
	printDashboard(output.New(&buf), d, orders)
	out := buf.String()
	assert.Contains(t, out, "30.00")
	assert.Contains(t, out, "1 (50.0%)")
	assert.Contains(t, out, "Grace")
}

func TestRootHasCommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"serve", "stats", "transitions"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
