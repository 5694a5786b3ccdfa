// Package envsetup wires the descriptor reader, path layout and environment
// updater into the operations exposed by the CLI.
package envsetup

import (
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/rslenv/internal/config"
	"git.home.luguber.info/inful/rslenv/internal/envpath"
	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
	"git.home.luguber.info/inful/rslenv/internal/layout"
	"git.home.luguber.info/inful/rslenv/internal/logfields"
	"git.home.luguber.info/inful/rslenv/internal/pom"
)

// Service resolves the acceptance search path for one working directory.
type Service struct {
	cfg     *config.Config
	workDir string
	store   envpath.Store
	logger  *slog.Logger
}

// New creates a Service. workDir must be absolute; store is usually
// envpath.Process{}.
func New(cfg *config.Config, workDir string, store envpath.Store) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{
		cfg:     cfg,
		workDir: workDir,
		store:   store,
		logger:  slog.Default(),
	}
}

// WithLogger overrides the logger.
func (s *Service) WithLogger(l *slog.Logger) *Service {
	s.logger = l
	return s
}

// Variable is the name of the managed environment variable.
func (s *Service) Variable() string { return s.cfg.Variable }

// WorkDir is the directory paths are composed under.
func (s *Service) WorkDir() string { return s.workDir }

// DescriptorPath resolves the configured descriptor against the working
// directory.
func (s *Service) DescriptorPath() string {
	if filepath.IsAbs(s.cfg.Descriptor) {
		return s.cfg.Descriptor
	}
	return filepath.Join(s.workDir, s.cfg.Descriptor)
}

// Version reads the project version from the descriptor.
func (s *Service) Version() (string, error) {
	r := &pom.Reader{Path: s.DescriptorPath(), Namespace: s.cfg.Namespace}
	v, err := r.Read()
	if err != nil {
		return "", err
	}
	s.logger.Debug("Read project version",
		logfields.Descriptor(r.Path),
		logfields.Version(v))
	return v, nil
}

// Paths reads the version and composes the search-path entries.
func (s *Service) Paths() (layout.Paths, error) {
	v, err := s.Version()
	if err != nil {
		return layout.Paths{}, err
	}
	return s.cfg.Layout.Compose(v, s.workDir), nil
}

// CurrentValue returns the variable's value, empty when unset.
func (s *Service) CurrentValue() string {
	return envpath.Value(s.store, s.cfg.Variable)
}

// Preview returns the value SetEnv would write without touching the store.
func (s *Service) Preview() (string, error) {
	v, err := s.Version()
	if err != nil {
		return "", err
	}
	return s.PreviewFor(v)
}

// PreviewFor is Preview for an already known version. The descriptor is not
// read.
func (s *Service) PreviewFor(version string) (string, error) {
	p := s.cfg.Layout.Compose(version, s.workDir)
	scratch := envpath.Snapshot(s.store, s.cfg.Variable)
	return envpath.Update(scratch, s.cfg.Variable, s.cfg.Separator(), p.Entries()...)
}

// SetEnv appends the acceptance paths to the variable in the store. A
// descriptor failure leaves the store untouched.
func (s *Service) SetEnv() (string, error) {
	p, err := s.Paths()
	if err != nil {
		return "", err
	}

	v, err := envpath.Update(s.store, s.cfg.Variable, s.cfg.Separator(), p.Entries()...)
	if err != nil {
		return "", derrors.EnvWriteFailed(s.cfg.Variable, err)
	}

	s.logger.Info("Updated search path",
		logfields.Variable(s.cfg.Variable),
		logfields.Resource(p.ResourceDir),
		logfields.Archive(p.ArchivePath))
	return v, nil
}
