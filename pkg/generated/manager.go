package generated

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
	"github.com/rs/zerolog"
)

// State classifies a path on disk for drift reporting.
type State int

const (
	StateMissing State = iota
	StateUnmanaged
	StateClean
	StateModified
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateUnmanaged:
		return "unmanaged"
	case StateClean:
		return "clean"
	case StateModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Status is the drift report for one path.
type Status struct {
	Path  string
	State State
	Style HeaderStyle
	// Embedded and Actual are empty unless a header was found.
	Embedded string
	Actual   string
}

// Outcome is what WriteIfUnmodified did.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeUpdated
	OutcomeUnchanged
	OutcomeSkippedModified
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSkippedModified:
		return "skipped (modified)"
	default:
		return "unknown"
	}
}

// Written reports whether the outcome left the freshly composed content on
// disk.
func (o Outcome) Written() bool {
	return o != OutcomeSkippedModified
}

// Manager writes and inspects managed files through a types.FS.
type Manager struct {
	fs     types.FS
	logger zerolog.Logger
	dryRun bool
}

// NewManager creates a Manager over fsys.
func NewManager(fsys types.FS) *Manager {
	return &Manager{
		fs:     fsys,
		logger: logging.GetLogger("generated"),
	}
}

// WithDryRun returns a copy of m that reports outcomes without touching the
// filesystem.
func (m *Manager) WithDryRun(dryRun bool) *Manager {
	c := *m
	c.dryRun = dryRun
	return &c
}

// FS returns the filesystem the manager writes to.
func (m *Manager) FS() types.FS {
	return m.fs
}

// Write writes body to path under a fingerprint header, creating parent
// directories as needed.
func (m *Manager) Write(path, body string, style HeaderStyle, perm fs.FileMode) error {
	return m.writeRaw(path, Compose(body, style), perm)
}

// WriteUnmanaged writes content as is, without a header.
func (m *Manager) WriteUnmanaged(path, content string, perm fs.FileMode) error {
	return m.writeRaw(path, content, perm)
}

func (m *Manager) writeRaw(path, content string, perm fs.FileMode) error {
	if m.dryRun {
		m.logger.Debug().Str("path", path).Msg("dry run, not writing")
		return nil
	}
	if err := m.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
	}
	if err := m.fs.WriteFile(path, []byte(content), perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	// WriteFile leaves the mode of an existing file alone
	if err := m.fs.Chmod(path, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to set mode on %s", path)
	}
	m.logger.Trace().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

// read returns the file content, or ok=false when the file does not exist.
func (m *Manager) read(path string) (string, bool, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return string(data), true, nil
}

// IsManuallyModified reports whether path holds a managed file whose body no
// longer matches its header. Missing files and files without a header are
// not modified.
func (m *Manager) IsManuallyModified(path string) (bool, error) {
	content, ok, err := m.read(path)
	if err != nil || !ok {
		return false, err
	}
	return HasDrifted(content), nil
}

// Inspect returns the drift status of path.
func (m *Manager) Inspect(path string) (Status, error) {
	st := Status{Path: path}
	content, ok, err := m.read(path)
	if err != nil {
		return st, err
	}
	if !ok {
		st.State = StateMissing
		return st, nil
	}

	h, found := ParseHeader(content)
	if !found {
		st.State = StateUnmanaged
		return st, nil
	}

	st.Style = h.Style
	st.Embedded = h.Embedded
	st.Actual = h.Actual()
	if h.Modified() {
		st.State = StateModified
	} else {
		st.State = StateClean
	}
	return st, nil
}

// WriteIfUnmodified writes body unless the file on disk was edited by hand.
// force overwrites edited files too. Content that is already byte-identical
// is left alone.
func (m *Manager) WriteIfUnmodified(path, body string, style HeaderStyle, perm fs.FileMode, force bool) (Outcome, error) {
	content, exists, err := m.read(path)
	if err != nil {
		return OutcomeSkippedModified, err
	}

	if exists && !force && HasDrifted(content) {
		m.logger.Info().Str("path", path).Msg("skipping manually modified file")
		return OutcomeSkippedModified, nil
	}

	composed := Compose(body, style)
	if exists && content == composed {
		return OutcomeUnchanged, nil
	}

	if err := m.writeRaw(path, composed, perm); err != nil {
		return OutcomeSkippedModified, err
	}
	if exists {
		return OutcomeUpdated, nil
	}
	return OutcomeCreated, nil
}
