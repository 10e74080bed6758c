package cli

import (
	"fmt"
	"os"

	"github.com/lazypower/lifeboard/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the media library",
	RunE:  runList,
}

// openStore resolves the data directory for CLI commands.
func openStore() (*store.Store, error) {
	dataDir := os.Getenv("LIFEBOARD_DATA_DIR")
	if dataDir == "" {
		var err error
		dataDir, err = store.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(dataDir)
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	media, err := st.ListMedia()
	if err != nil {
		return fmt.Errorf("read media: %w", err)
	}

	fmt.Printf("Media items: %d\n", len(media))
	for i, m := range media {
		fmt.Printf("%d. %s\n", i+1, m.Title)
	}
	return nil
}
