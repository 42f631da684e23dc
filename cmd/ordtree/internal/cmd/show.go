package cmd

import (
	"github.com/npillmayer/ordtree"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the records of a tree in traversal order",
	Long: `List the records of a tree in traversal order. In-order lists
records by ascending ID, pre-order and post-order reveal the shape of the
tree.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := ordtree.ParseOrder(cmd.Flag("order").Value.String())
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		recs, err := s.svc.Traverse(s.variant, order)
		if err != nil {
			return err
		}
		return s.printer.Table(s.out, recs)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("order", "o", "inorder", "Traversal order (inorder, preorder or postorder)")
}
