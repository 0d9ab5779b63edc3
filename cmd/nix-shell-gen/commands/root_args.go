package commands

type RootArgs struct {
	logLevel  *string
	logFormat *string
	dir       *string
	quiet     *bool
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		dir:       new(string),
		quiet:     new(bool),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetDir() string {
	return *a.dir
}

func (a *RootArgs) GetQuiet() bool {
	return *a.quiet
}
