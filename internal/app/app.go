package app

// App is the wired application handed to CLI commands.
type App struct {
	Config Config
	*Wire
}

// New validates cfg and builds an App whose logs go to stderr.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg, nil)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}
