package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"MiniLibrary/internal/config"
	"MiniLibrary/internal/library"
)

const service = "library"

type options struct {
	cfgFile string
	v       *viper.Viper
}

func NewRootCmd(version string) *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:           "library",
		Short:         "In-memory catalog of books and journals",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (yaml); environment variables override it")

	root.AddCommand(
		newServeCmd(opts),
		newListCmd(opts),
		newTokenCmd(opts),
	)
	return root
}

func (o *options) load() (config.Config, error) {
	return config.Load(o.v, o.cfgFile)
}

// buildLibrary applies the default seed first, then any configured products.
func buildLibrary(cfg config.Config) (*library.Library, error) {
	lib := library.New()
	if cfg.Seed {
		if err := library.Seed(lib, library.DefaultSeed()); err != nil {
			return nil, err
		}
	}
	if err := library.Seed(lib, cfg.Products); err != nil {
		return nil, err
	}
	return lib, nil
}
