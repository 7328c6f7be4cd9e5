// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/memomat/harness"
)

// runLoadPlan parses args through the real verify command and returns the
// plan loadPlan resolved for them.
func runLoadPlan(t *testing.T, args ...string) (harness.Plan, error) {
	t.Helper()

	var got harness.Plan
	var loadErr error
	cmd := verifyCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		got, loadErr = loadPlan(c)
		return nil
	}
	app := &cli.Command{Name: "memomat", Commands: []*cli.Command{cmd}}
	require.NoError(t, app.Run(context.Background(), append([]string{"memomat", "verify"}, args...)))

	return got, loadErr
}

func TestLoadPlan_Defaults(t *testing.T) {
	plan, err := runLoadPlan(t)

	require.NoError(t, err)
	require.Equal(t, harness.DefaultPlan(), plan)
}

func TestLoadPlan_FlagsOverrideDefaults(t *testing.T) {
	plan, err := runLoadPlan(t, "--trials", "2", "--size", "3", "--seed", "7", "--tolerance", "1e-6")

	require.NoError(t, err)
	require.Equal(t, 2, plan.Trials)
	require.Equal(t, 3, plan.Size)
	require.Equal(t, int64(7), plan.Seed)
	require.Equal(t, 1e-6, plan.PivotTol)
	require.Equal(t, harness.DefaultPlan().CheckTol, plan.CheckTol)
}

func TestLoadPlan_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 2\nseed: 9\ncheck_tolerance: 1e-7\n"), 0o600))

	plan, err := runLoadPlan(t, "--config", path, "--trials", "3")

	require.NoError(t, err)
	// The explicit flag wins; untouched fields keep the file values.
	require.Equal(t, 3, plan.Trials)
	require.Equal(t, int64(9), plan.Seed)
	require.Equal(t, 1e-7, plan.CheckTol)
	require.Equal(t, harness.DefaultPlan().Size, plan.Size)
}

func TestLoadPlan_MissingConfigFile(t *testing.T) {
	_, err := runLoadPlan(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}
