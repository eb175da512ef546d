package printer

// ServerPrinterOption configures a ServerPrinter.
type ServerPrinterOption func(*ServerPrinterOptions) error

// ServerPrinterOptions holds configuration for server printing.
type ServerPrinterOptions struct {
	showSeparator bool
	showDetails   bool
}

func defaultServerPrinterOptions() ServerPrinterOptions {
	return ServerPrinterOptions{}
}

// NewServerPrinterOptions creates options with defaults and applies the given options.
func NewServerPrinterOptions(opt ...ServerPrinterOption) (ServerPrinterOptions, error) {
	opts := defaultServerPrinterOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return ServerPrinterOptions{}, err
		}
	}

	return opts, nil
}

// WithSeparator prints a rule between listings.
func WithSeparator(show bool) ServerPrinterOption {
	return func(o *ServerPrinterOptions) error {
		o.showSeparator = show
		return nil
	}
}

// WithDetails prints the long-form sections (install, env, tools, links).
func WithDetails(show bool) ServerPrinterOption {
	return func(o *ServerPrinterOptions) error {
		o.showDetails = show
		return nil
	}
}
