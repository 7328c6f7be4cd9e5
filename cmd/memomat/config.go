// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/memomat/harness"
)

// planFile is the YAML shape accepted by --config. Zero fields fall back to
// the harness defaults; explicit flags override file values.
type planFile struct {
	Trials   int     `yaml:"trials"`
	Size     int     `yaml:"size"`
	Seed     int64   `yaml:"seed"`
	PivotTol float64 `yaml:"pivot_tolerance"`
	CheckTol float64 `yaml:"check_tolerance"`
}

// loadPlan resolves the effective harness.Plan: defaults, then the optional
// YAML file, then any flags the user set explicitly.
func loadPlan(cmd *cli.Command) (harness.Plan, error) {
	plan := harness.DefaultPlan()

	if path := cmd.String("config"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return plan, fmt.Errorf("loadPlan: %w", err)
		}
		var pf planFile
		if err := yaml.Unmarshal(raw, &pf); err != nil {
			return plan, fmt.Errorf("loadPlan: %s: %w", path, err)
		}
		if pf.Trials > 0 {
			plan.Trials = pf.Trials
		}
		if pf.Size > 0 {
			plan.Size = pf.Size
		}
		if pf.Seed != 0 {
			plan.Seed = pf.Seed
		}
		if pf.PivotTol > 0 {
			plan.PivotTol = pf.PivotTol
		}
		if pf.CheckTol > 0 {
			plan.CheckTol = pf.CheckTol
		}
	}

	// Flags set on the command line take precedence over the file.
	if cmd.IsSet("trials") {
		plan.Trials = int(cmd.Int("trials"))
	}
	if cmd.IsSet("size") {
		plan.Size = int(cmd.Int("size"))
	}
	if cmd.IsSet("seed") {
		plan.Seed = cmd.Int("seed")
	}
	if cmd.IsSet("tolerance") {
		plan.PivotTol = cmd.Float("tolerance")
	}

	return plan, nil
}
