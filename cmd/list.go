package cmd

import (
	"fmt"

	"github.com/KaramelBytes/dataviz-cli/internal/manifest"
	"github.com/KaramelBytes/dataviz-cli/internal/utils"
	"github.com/spf13/cobra"
)

var listOutDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List artifacts recorded in an output directory's manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := listOutDir
		if dir == "" {
			root, err := utils.FindManifestRoot("")
			if err != nil {
				return err
			}
			dir = root
		}
		m, err := manifest.LoadManifest(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", m.Name, m.RootDir())
		arts := m.List()
		if len(arts) == 0 {
			fmt.Fprintln(out, "(no artifacts)")
			return nil
		}
		for _, a := range arts {
			fmt.Fprintf(out, "- %s: %s [%s, %d bytes]\n", a.ID, a.Path, a.Kind, a.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOutDir, "out-dir", "o", "", "output directory holding manifest.json (default: nearest parent with one)")
}
