package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kilianp07/powerplan/core/solver"
)

var meritCmd = &cobra.Command{
	Use:   "merit <payload.json>",
	Short: "Print the merit order for a payload file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMerit,
}

func init() {
	rootCmd.AddCommand(meritCmd)
}

type meritLine struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Cost float64 `json:"cost"`
}

func runMerit(cmd *cobra.Command, args []string) error {
	payload, err := loadPayload(args[0])
	if err != nil {
		return err
	}
	req, err := payload.ToRequest()
	if err != nil {
		return err
	}
	entries, err := solver.MeritOrder(req)
	if err != nil {
		return err
	}
	lines := make([]meritLine, len(entries))
	for i, e := range entries {
		lines[i] = meritLine{Name: e.Plant.Name, Type: e.Plant.Type.String(), Cost: e.Cost}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(lines)
}
