package store

import (
	"fmt"
	"strings"
)

// Option configures store construction.
type Option func(*Options) error

// Options holds configuration for a store.
type Options struct {
	dir string
}

func defaultOptions() Options {
	return Options{}
}

// NewOptions creates Options with defaults and applies the given options.
func NewOptions(opt ...Option) (Options, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return Options{}, err
		}
	}

	return opts, nil
}

// WithDirectory overrides the base directory for the backing file.
// When unset, the XDG user data directory is used.
func WithDirectory(dir string) Option {
	return func(o *Options) error {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("store directory cannot be empty")
		}
		o.dir = dir
		return nil
	}
}
