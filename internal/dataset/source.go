package dataset

import (
	"fmt"

	"github.com/haytac/emojify/internal/emoji"
)

// Source kind names accepted in configuration.
const (
	KindBuiltin = "builtin"
	KindFile    = "file"
	KindSQLite  = "sqlite"
	KindGomoji  = "gomoji"
)

// ForKind returns the dataset source for a configured kind. path is
// required for the file and sqlite kinds and ignored otherwise. An empty
// kind selects the builtin dataset.
func ForKind(kind, path string) (emoji.Source, error) {
	switch kind {
	case KindBuiltin, "":
		return Builtin{}, nil
	case KindFile:
		if path == "" {
			return nil, fmt.Errorf("dataset source %q requires a path", kind)
		}
		return NewFile(path), nil
	case KindSQLite:
		if path == "" {
			return nil, fmt.Errorf("dataset source %q requires a path", kind)
		}
		return NewSQLite(path), nil
	case KindGomoji:
		return Gomoji{}, nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q (supported: %s, %s, %s, %s)",
			kind, KindBuiltin, KindFile, KindSQLite, KindGomoji)
	}
}
