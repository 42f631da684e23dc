package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics of a tree",
	Long: `Print statistics of a tree as YAML: number of records, root,
smallest and largest ID and, for AVL trees, height and balance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		st, err := s.svc.Stats(s.variant)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(s.out)
		defer enc.Close()
		return enc.Encode(st)
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
