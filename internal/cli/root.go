package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lifeboard",
	Short: "Personal dashboard for media, habits, papers, and people",
	Long:  "Lifeboard tracks your media library, sports, todos, habits, research papers, and relationships behind one local API. Single Go binary, flat-file storage.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}
