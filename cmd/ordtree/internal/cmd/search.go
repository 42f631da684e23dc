package cmd

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/ordtree"
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <id>",
	Short: "Find the record with a given ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("%w: id must be a positive number, is %q", ordtree.ErrValidation, args[0])
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		rec, err := s.svc.Search(s.variant, ordtree.ID(id))
		if err != nil {
			return err
		}
		return s.printer.Table(s.out, []ordtree.Record{rec})
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
}
