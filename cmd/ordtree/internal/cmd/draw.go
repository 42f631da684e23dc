package cmd

import (
	"github.com/npillmayer/ordtree/html"
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Draw the shape of a tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		view, err := s.svc.Snapshot(s.variant)
		if err != nil {
			return err
		}
		s.printer.Annotate, _ = cmd.Flags().GetBool("annotate")
		return s.printer.Tree(s.out, view.Root)
	},
}

// dotCmd represents the dot command
var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Write a tree in Graphviz DOT format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		return s.svc.Dot(s.variant, s.out)
	},
}

// htmlCmd represents the html command
var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Write a tree as an HTML fragment of nested lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		view, err := s.svc.Snapshot(s.variant)
		if err != nil {
			return err
		}
		return html.Render(s.out, view)
	},
}

func init() {
	RootCmd.AddCommand(treeCmd)
	RootCmd.AddCommand(dotCmd)
	RootCmd.AddCommand(htmlCmd)
	treeCmd.Flags().BoolP("annotate", "a", false, "Show subtree height and balance factor")
}
