package fbshot

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// UniquePath composes an output path of the form [dir/]base[-date].png and
// appends a numeric "-N" suffix, N counting up from 1, until the candidate
// does not exist. The date component uses local wall-clock time formatted as
// YYYY-MM-DD-HH-MM-SS. An empty base selects "screenshot"; an empty dir
// leaves the path relative to the current directory.
//
// The existence check and the later file creation are not atomic: a
// concurrent writer can still claim the path between the two. This race is
// accepted and left unresolved.
func UniquePath(dir, base string, withDate bool) string {
	if base == "" {
		base = defaultBaseName
	}

	name := base
	if withDate {
		name += "-" + time.Now().Format(dateLayout)
	}

	candidate := name + outputExt
	if dir != "" {
		candidate = filepath.Join(dir, candidate)
	}

	stem := strings.TrimSuffix(candidate, outputExt)
	for counter := 1; fileExists(candidate); counter++ {
		candidate = stem + "-" + strconv.Itoa(counter) + outputExt
	}

	return candidate
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
