package version

import (
	"fmt"
	"runtime/debug"
)

type (
	// Info is the subset of the Go build info that identifies a binary.
	Info struct {
		Module   string
		VCS      string
		Revision string
		Time     string
		Modified bool
	}
)

func Read() (info Info) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) (info Info) {
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Module = v
	}

	for i := range bi.Settings {
		switch bi.Settings[i].Key {
		case "vcs":
			info.VCS = bi.Settings[i].Value
		case "vcs.revision":
			info.Revision = bi.Settings[i].Value
		case "vcs.time":
			info.Time = bi.Settings[i].Value
		case "vcs.modified":
			info.Modified = bi.Settings[i].Value == "true"
		default:
			continue
		}
	}

	return info
}

func (i Info) String() string {
	if i.Revision == "" {
		if i.Module != "" {
			return i.Module
		}

		return "unavailable"
	}

	s := fmt.Sprintf("built from %s revision %s", i.VCS, i.Revision)

	if i.Modified {
		s += " (modified)"
	}

	if i.Time != "" {
		s += " at " + i.Time
	}

	if i.Module != "" {
		s = i.Module + ", " + s
	}

	return s
}

// FromBuildInfo describes the running binary, e.g. for a --version flag.
func FromBuildInfo() string {
	return Read().String()
}
