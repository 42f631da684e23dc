package cmd

import (
	"fmt"

	"github.com/npillmayer/ordtree"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the structure of both trees",
	Long: `Verify the structure of both trees: ordering of IDs, record count
and, for the AVL tree, stored heights and balance. Exits with an error if
any tree is broken.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		var failed bool
		for _, v := range ordtree.Variants {
			if err := s.svc.Check(v); err != nil {
				fmt.Fprintf(s.out, "%s: %v\n", v, err)
				failed = true
				continue
			}
			fmt.Fprintf(s.out, "%s: ok\n", v)
		}
		rep := s.svc.CheckBalance()
		fmt.Fprintf(s.out, "%s (height %d, %d records)\n", rep.Message, rep.Height, rep.Count)
		if failed || !rep.Balanced {
			return ordtree.ErrInvariant
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
