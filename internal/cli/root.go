package cli

import (
	"os"

	"career-cli/internal/store"
	"career-cli/internal/tui"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:          "career",
		Short:        "Track job applications from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStore(dir)
			if err != nil {
				return err
			}
			jobs, err := s.Load()
			if err != nil {
				return err
			}
			final, err := tui.Run(s, jobs)
			if err != nil {
				return err
			}
			// The shutdown save is the authoritative persistence point;
			// its failure propagates after the terminal is restored.
			return s.Save(final)
		},
	}

	cmd.PersistentFlags().StringVar(&dir, "dir", envOr("CAREER_DIR", ""), "Path to the data dir (default: ~/.career)")
	return cmd
}

func resolveStore(dir string) (store.Store, error) {
	if dir != "" {
		s := store.Store{Dir: dir}
		return s, s.Ensure()
	}
	d, err := store.DefaultDir()
	if err != nil {
		return store.Store{}, err
	}
	s := store.Store{Dir: d}
	return s, s.Ensure()
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
