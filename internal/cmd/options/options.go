// Package options provides dependency injection for CLI commands, allowing
// tests to substitute the config loader, catalog and collection builders.
package options

import (
	"github.com/mcp-hub/mcphub/internal/cmd"
	"github.com/mcp-hub/mcphub/internal/config"
)

type CmdOption func(*CmdOptions) error

type CmdOptions struct {
	ConfigLoader config.Loader
	Catalog      cmd.CatalogBuilder
	Collections  cmd.CollectionsBuilder
}

func defaultOptions() CmdOptions {
	base := &cmd.BaseCmd{}
	return CmdOptions{
		ConfigLoader: &config.DefaultLoader{},
		Catalog:      base,
		Collections:  base,
	}
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

func WithConfigLoader(l config.Loader) CmdOption {
	return func(o *CmdOptions) error {
		o.ConfigLoader = l
		return nil
	}
}

func WithCatalogBuilder(b cmd.CatalogBuilder) CmdOption {
	return func(o *CmdOptions) error {
		o.Catalog = b
		return nil
	}
}

func WithCollectionsBuilder(b cmd.CollectionsBuilder) CmdOption {
	return func(o *CmdOptions) error {
		o.Collections = b
		return nil
	}
}
