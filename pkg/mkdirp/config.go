package mkdirp

// Config is the per-invocation configuration of a PathCreator. It is built
// once from the command line and not modified while a walk runs.
type Config struct {
	Mode ModeSelection
	// Parents enables creation of missing intermediate directories.
	Parents bool
	// Verbose publishes a created event for every new directory.
	Verbose bool
	// DryRun routes every change to a DryRunFS overlay instead of the
	// filesystem the creator was given.
	DryRun bool
}

// DefaultConfig returns the configuration of a bare invocation:
// owner-full mode, no parents, quiet.
func DefaultConfig() Config {
	return Config{Mode: DefaultMode()}
}
