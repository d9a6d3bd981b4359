package mkdirp

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp/core"
	"github.com/arthur-debert/mkdirp/pkg/mkdirp/filesystem"
)

// Result lists what a walk did, in the order it happened.
type Result struct {
	Created  []string
	Existing []string
}

// PathCreator makes sure a path exists as a directory, optionally creating
// its missing ancestors first.
type PathCreator struct {
	fs     filesystem.FileSystem
	config Config
	logger zerolog.Logger
	bus    core.EventBus
}

// Option configures a PathCreator.
type Option func(*PathCreator)

// WithLogger sets the logger used for walk diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(pc *PathCreator) {
		pc.logger = logger
	}
}

// WithEventBus sets the bus that created and mode-changed events go to.
func WithEventBus(bus core.EventBus) Option {
	return func(pc *PathCreator) {
		pc.bus = bus
	}
}

// NewPathCreator creates a PathCreator over fsys.
func NewPathCreator(fsys filesystem.FileSystem, config Config, opts ...Option) *PathCreator {
	pc := &PathCreator{
		fs:     fsys,
		config: config,
		logger: DefaultLogger(),
	}
	for _, opt := range opts {
		opt(pc)
	}
	if config.DryRun {
		if _, ok := fsys.(*DryRunFS); !ok {
			pc.fs = NewDryRunFS(fsys)
		}
	}
	if pc.bus == nil {
		pc.bus = core.NewMemoryEventBus(pc.logger)
	}
	return pc
}

// Events returns the bus the creator publishes to.
func (pc *PathCreator) Events() core.EventBus {
	return pc.bus
}

// EnsureDirectory makes sure path exists as a directory.
//
// Without Parents only path itself is checked and, if absent, created.
// With Parents every prefix is checked and created in root-to-leaf order.
// The first failure stops the walk; directories created before it are kept.
// The returned Result is non-nil even on error.
func (pc *PathCreator) EnsureDirectory(ctx context.Context, path string) (*Result, error) {
	return pc.EnsureAll(ctx, []string{path})
}

// EnsureAll is EnsureDirectory for several paths at once. Shared ancestors
// are checked once, and every directory is handled after the directories
// it is nested in (see Plan). The first failure stops the walk.
func (pc *PathCreator) EnsureAll(ctx context.Context, paths []string) (*Result, error) {
	result := &Result{}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	steps, err := Plan(paths, pc.config.Parents)
	if err != nil {
		pc.logger.Error().Err(err).Strs("paths", paths).Msg("rejected path")
		return result, err
	}

	pc.logger.Debug().
		Strs("paths", paths).
		Bool("parents", pc.config.Parents).
		Bool("dry_run", pc.config.DryRun).
		Str("mode", pc.config.Mode.Mode.Octal()).
		Int("steps", len(steps)).
		Msg("ensuring directories")

	for _, step := range steps {
		if err := pc.checkOrCreate(ctx, step, result); err != nil {
			pc.logger.Error().
				Err(err).
				Str("path", step).
				Int("created", len(result.Created)).
				Msg("directory walk aborted")
			return result, err
		}
	}
	return result, nil
}

func (pc *PathCreator) checkOrCreate(ctx context.Context, path string, result *Result) error {
	info, statErr := pc.fs.Stat(path)
	state := core.StateOf(info, statErr)

	pc.logger.Debug().
		Str("path", path).
		Stringer("state", state).
		Msg("checked prefix")

	switch state {
	case core.StateDirectory:
		result.Existing = append(result.Existing, path)
		return nil
	case core.StateNotDirectory:
		return core.NewPathError(core.ErrNotDirectory, path, nil)
	}

	mode := pc.config.Mode.Mode
	if err := pc.fs.Mkdir(path, mode.Perm()); err != nil {
		return core.NewPathError(core.ErrCreationFailed, path, err)
	}
	result.Created = append(result.Created, path)
	pc.logger.Info().Str("path", path).Str("mode", mode.Octal()).Msg("created directory")

	if pc.config.Verbose {
		pc.publish(ctx, core.NewDirectoryCreatedEvent(path))
	}

	if pc.config.Mode.Requested {
		// mkdir(2) masks the mode with the umask; set it explicitly.
		if err := pc.fs.Chmod(path, mode.Perm()); err != nil {
			return core.NewPathError(core.ErrCreationFailed, path, err)
		}
		pc.publish(ctx, core.NewModeChangedEvent(path, mode))
	}
	return nil
}

func (pc *PathCreator) publish(ctx context.Context, event core.Event) {
	if err := pc.bus.Publish(ctx, event); err != nil {
		pc.logger.Warn().Err(err).Str("event_type", event.Type()).Msg("publishing event failed")
	}
}
