package rename

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

type (
	FileEntry struct {
		Dir  string
		Name string
	}

	Kind byte

	Outcome struct {
		// Err wraps one of the package sentinels. Cause is the underlying error of a failed rename.
		Err     error
		Cause   error
		Entry   FileEntry
		NewName string
		Kind    Kind
	}

	Summary struct {
		Scanned int
		Renamed int
		Skipped int
		Failed  int
	}

	// FileSystem is the subset of file system calls a [Renamer] makes besides walking the tree.
	FileSystem interface {
		Stat(name string) (fs.FileInfo, error)
		Lstat(name string) (fs.FileInfo, error)
		Rename(oldpath, newpath string) error
	}

	Renamer struct {
		fsys     FileSystem
		reporter *Reporter
		logger   *log.Logger
		root     string
	}

	Option func(*Renamer)

	osFileSystem struct{}
)

const (
	NoMatch Kind = iota
	Renamed
	SkippedExists
	Failed
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case Renamed:
		return "renamed"
	case SkippedExists:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

func (e FileEntry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

func (o Outcome) Target() string {
	return filepath.Join(o.Entry.Dir, o.NewName)
}

func (s *Summary) record(o Outcome) {
	s.Scanned++

	switch o.Kind {
	case Renamed:
		s.Renamed++
	case SkippedExists:
		s.Skipped++
	case Failed:
		s.Failed++
	case NoMatch:
	}
}

func (osFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (osFileSystem) Rename(oldpath, newpath string) error {
	return renameNoReplace(oldpath, newpath)
}

func WithReporter(reporter *Reporter) Option {
	return func(r *Renamer) {
		r.reporter = reporter
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(r *Renamer) {
		r.logger = logger
	}
}

func WithFileSystem(fsys FileSystem) Option {
	return func(r *Renamer) {
		r.fsys = fsys
	}
}

// NewRenamer returns a Renamer for the tree under root.
// Without options it uses the real file system, reports to stdout and discards logs.
func NewRenamer(root string, opts ...Option) *Renamer {
	r := Renamer{root: root}

	for _, opt := range opts {
		opt(&r)
	}

	if r.fsys == nil {
		r.fsys = osFileSystem{}
	}

	if r.reporter == nil {
		r.reporter = NewReporter(os.Stdout)
	}

	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}

	return &r
}

// Apply decides the new name of a single file and renames it within its directory.
// The file is left alone when no rule matches or when something already exists at the target path.
func (r *Renamer) Apply(entry FileEntry) Outcome {
	out := Outcome{Entry: entry, Kind: NoMatch}

	rule, newName, ok := Match(entry.Name)
	if !ok {
		return out
	}

	out.NewName = newName
	target := out.Target()

	r.logger.Debug("rule matched", "rule", rule.Name, "path", entry.Path(), "target", target)

	_, err := r.fsys.Lstat(target)
	if err == nil {
		out.Kind = SkippedExists
		out.Err = fmt.Errorf("%w: %q", ErrTargetExists, target)

		return out
	} else if !errors.Is(err, fs.ErrNotExist) {
		out.Kind = Failed
		out.Cause = err
		out.Err = fmt.Errorf("%w: cannot check whether %q exists: %w", ErrRenameFailed, target, err)

		return out
	}

	err = r.fsys.Rename(entry.Path(), target)
	if err != nil {
		out.Kind = Failed
		out.Cause = err
		out.Err = fmt.Errorf("%w: %w", ErrRenameFailed, err)

		return out
	}

	out.Kind = Renamed

	return out
}

// Run walks the tree under the root, applies [Renamer.Apply] to every file and reports each decision.
// Per-file failures and unreadable directories never stop the walk.
func (r *Renamer) Run() (summary Summary) {
	r.reporter.Banner(r.root)

	// WalkDir does not follow a root that is itself a symlink.
	walkRoot := r.root
	if resolved, err := filepath.EvalSymlinks(r.root); err == nil {
		walkRoot = resolved
	}

	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.logger.Warn("cannot read path, skipping it", "path", path, "err", err)

			return nil
		}

		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if info, err1 := r.fsys.Stat(path); err1 == nil && info.IsDir() {
				r.logger.Debug("not following symlink to directory", "path", path)

				return nil
			}
		}

		out := r.Apply(FileEntry{Dir: filepath.Dir(path), Name: d.Name()})

		summary.record(out)
		r.reporter.Outcome(out)

		return nil
	})
	if err != nil {
		r.logger.Warn("walk stopped early", "root", walkRoot, "err", err)
	}

	r.logger.Debug("walk finished", "scanned", summary.Scanned, "renamed", summary.Renamed, "skipped", summary.Skipped, "failed", summary.Failed)

	r.reporter.Summary(summary)

	return summary
}
