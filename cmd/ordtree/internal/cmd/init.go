package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/fixture"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file and a sample fixture",
	Long: `Create a configuration file (ordtree.toml) and a sample fixture
(records.yaml) in a directory. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if err := mkConfig(dir); err != nil {
			return err
		}
		if err := mkFixture(dir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", dir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func mkConfig(dir string) error {
	var confBuf bytes.Buffer
	e := toml.NewEncoder(&confBuf)
	if err := e.Encode(defaultConfig()); err != nil {
		return err
	}
	return writeNew(filepath.Join(dir, defaultConfigFile), confBuf.Bytes())
}

func mkFixture(dir string) error {
	set := fixture.Set{Records: []ordtree.Record{
		{ID: 50, Name: "Lucas", Age: 7},
		{ID: 25, Name: "Ana", Age: 5},
		{ID: 75, Name: "Eva", Age: 8},
		{ID: 10, Name: "Tom", Age: 3},
		{ID: 30, Name: "Mia", Age: 6},
		{ID: 60, Name: "Noah", Age: 9},
		{ID: 80, Name: "Lena", Age: 4},
	}}
	var buf bytes.Buffer
	if err := fixture.Encode(&buf, set); err != nil {
		return err
	}
	return writeNew(filepath.Join(dir, "records.yaml"), buf.Bytes())
}

// writeNew writes a file which must not exist yet.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
