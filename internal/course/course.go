package course

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/samber/lo"
)

var courseFileRe = regexp.MustCompile(`^([A-Z0-9]+)\.csv$`)

// Course is one race track with a checkpoint table in the data directory.
type Course struct {
	Code string
	Dir  string
	// Paths are the names of the course's path overlays, sorted.
	Paths        []string
	HasCrossings bool
}

func (c Course) CheckpointFile() string      { return CheckpointFile(c.Dir, c.Code) }
func (c Course) PathFile(name string) string { return PathFile(c.Dir, c.Code, name) }

// Discover lists the courses in dir. Course tables are named after the
// course code in capitals and digits (MCTR.csv, CH3.csv); path overlays
// are named CODE_name.csv.
func Discover(dir string) ([]Course, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !e.IsDir()
	})
	sort.Strings(names)

	crossings, err := crossingTracks(dir)
	if err != nil {
		return nil, fmt.Errorf("read crossings: %w", err)
	}

	var courses []Course
	for _, name := range names {
		m := courseFileRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		code := m[1]
		pathRe := regexp.MustCompile(`^` + regexp.QuoteMeta(code) + `_([A-Za-z0-9_]+)\.csv$`)
		paths := lo.FilterMap(names, func(n string, _ int) (string, bool) {
			pm := pathRe.FindStringSubmatch(n)
			if pm == nil {
				return "", false
			}
			return pm[1], true
		})
		courses = append(courses, Course{
			Code:         code,
			Dir:          dir,
			Paths:        paths,
			HasCrossings: crossings[code],
		})
	}
	return courses, nil
}
