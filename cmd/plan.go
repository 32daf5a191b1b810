package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/powerplan/api/productionplan"
	"github.com/kilianp07/powerplan/core/solver"
	"github.com/kilianp07/powerplan/pkg/export"
)

var planFormat string

var planCmd = &cobra.Command{
	Use:   "plan <payload.json>",
	Short: "Solve a payload file offline and print the production plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format: json or csv")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	payload, err := loadPayload(args[0])
	if err != nil {
		return err
	}
	req, err := payload.ToRequest()
	if err != nil {
		return err
	}
	plan, err := solver.Solve(req)
	if errors.Is(err, solver.ErrNoFeasibleSolution) {
		return fmt.Errorf("no feasible plan for load %v", req.Load)
	}
	if err != nil {
		return err
	}
	switch planFormat {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), plan)
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), plan)
	default:
		return fmt.Errorf("unknown format %q", planFormat)
	}
}

func loadPayload(path string) (productionplan.Payload, error) {
	var payload productionplan.Payload
	data, err := os.ReadFile(path)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("parse payload: %w", err)
	}
	return payload, nil
}
