package category

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/config"
)

func runListCmd(t *testing.T, args ...string) string {
	t.Helper()

	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	c, err := cli.NewCLI(config.Default(), func() time.Time { return now })
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	var out bytes.Buffer
	cmd := CategoryCmd()
	cmd.SetArgs(append([]string{"list"}, args...))
	cmd.SetOut(&out)
	require.NoError(t, cmd.ExecuteContext(cli.WithCLI(context.Background(), c)))
	return out.String()
}

func TestCategoryList_Quiet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1", "2", "3", "4"}, strings.Fields(runListCmd(t, "--quiet")))
}

func TestCategoryList_JSONIncludesOpenCounts(t *testing.T) {
	t.Parallel()

	var payload struct {
		Success bool `json:"success"`
		Data    []struct {
			ID        int    `json:"id"`
			Name      string `json:"name"`
			OpenTasks int    `json:"openTasks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(runListCmd(t, "--json")), &payload))
	require.True(t, payload.Success)
	require.Len(t, payload.Data, 4)

	assert.Equal(t, "Work", payload.Data[1].Name)
	assert.Equal(t, 2, payload.Data[1].OpenTasks, "one of the three work tasks is done")
}

func TestCategoryList_Human(t *testing.T) {
	t.Parallel()

	out := runListCmd(t)
	assert.Contains(t, out, "Found 4 categories")
	assert.Contains(t, out, "[Shopping]")
}
