// Package levels provides level loading for Festival Crush.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels/formats"
)

//go:embed data
var embedded embed.FS

// ErrNotFound is returned by LoadByID for an unknown level.
var ErrNotFound = errors.New("levels: level not found")

// Level is a parsed and validated level file.
type Level struct {
	ID       string
	Chapter  Zodiac
	Number   int // position inside the chapter; 0 when the ID names no chapter
	Spec     core.LevelSpec
	FilePath string
}

// InChapter reports whether the level ID follows <Chapter>_Level_<n>.
func (l Level) InChapter() bool {
	return l.Number > 0
}

// Name returns a display title such as "Rat 3".
func (l Level) Name() string {
	if !l.InChapter() {
		return l.ID
	}
	return fmt.Sprintf("%s %d", l.Chapter, l.Number)
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Embedded returns a loader over the levels compiled into the binary.
func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "embedded", fsys: sub}
}

// LoadAll recursively scans and loads all level files. Invalid files are
// skipped; use Check to list them. Chaptered levels come first in zodiac and
// number order, the rest follow sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	err := l.walk(func(name string) {
		if lvl, err := l.LoadFile(name); err == nil {
			levels = append(levels, lvl)
		}
	})
	if err != nil {
		return nil, err
	}
	Sort(levels)
	return levels, nil
}

// Check loads every level file and returns one error per file that fails to
// parse or validate.
func (l *Loader) Check() ([]error, error) {
	var problems []error
	err := l.walk(func(name string) {
		if _, err := l.LoadFile(name); err != nil {
			problems = append(problems, err)
		}
	})
	return problems, err
}

func (l *Loader) walk(visit func(name string)) error {
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}
		visit(p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}
	return nil
}

// LoadFile loads a single level file. name is relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", name, err)
	}
	lvl, err := Parse(name, data)
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = path.Join(l.Root, name)
	return lvl, nil
}

// LoadByID loads a specific level by ID. A file named after id that fails to
// parse or validate reports that failure rather than ErrNotFound.
func (l *Loader) LoadByID(id string) (Level, error) {
	var match string
	err := l.walk(func(name string) {
		if match == "" && strings.TrimSuffix(path.Base(name), path.Ext(name)) == id {
			match = name
		}
	})
	if err != nil {
		return Level{}, err
	}
	if match == "" {
		return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return l.LoadFile(match)
}

// ListIDs returns all level IDs in load order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Parse decodes and validates level data. The file name picks the format and
// gives the level its ID.
func Parse(name string, data []byte) (Level, error) {
	ext := strings.ToLower(path.Ext(name))
	id := strings.TrimSuffix(path.Base(name), path.Ext(name))

	spec, err := parseByExtension(id, data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", name, err)
	}
	if err := spec.Validate(); err != nil {
		return Level{}, fmt.Errorf("levels: validating %s: %w", name, err)
	}

	lvl := Level{ID: id, Spec: spec}
	lvl.Chapter, lvl.Number = chapterOf(id)
	return lvl, nil
}

// chapterOf splits "Rat_Level_3" into (Rat, 3). Other IDs yield number 0.
func chapterOf(id string) (Zodiac, int) {
	chapter, num, ok := strings.Cut(id, "_Level_")
	if !ok {
		return 0, 0
	}
	z, ok := ParseZodiac(chapter)
	if !ok {
		return 0, 0
	}
	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return 0, 0
	}
	return z, n
}

// Sort orders levels for menus and campaign progression.
func Sort(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		a, b := levels[i], levels[j]
		if a.InChapter() != b.InChapter() {
			return a.InChapter()
		}
		if a.InChapter() {
			if a.Chapter != b.Chapter {
				return a.Chapter < b.Chapter
			}
			if a.Number != b.Number {
				return a.Number < b.Number
			}
		}
		return a.ID < b.ID
	})
}

// Chapter groups the levels of one zodiac sign.
type Chapter struct {
	Zodiac Zodiac
	Levels []Level
}

// Chapters groups sorted levels by chapter. Levels outside any chapter are
// returned separately.
func Chapters(levels []Level) (chapters []Chapter, other []Level) {
	for _, lvl := range levels {
		if !lvl.InChapter() {
			other = append(other, lvl)
			continue
		}
		if n := len(chapters); n == 0 || chapters[n-1].Zodiac != lvl.Chapter {
			chapters = append(chapters, Chapter{Zodiac: lvl.Chapter})
		}
		last := &chapters[len(chapters)-1]
		last.Levels = append(last.Levels, lvl)
	}
	return chapters, other
}

// Next returns the level after id in the given order.
func Next(levels []Level, id string) (Level, bool) {
	for i, lvl := range levels {
		if lvl.ID == id && i+1 < len(levels) {
			return levels[i+1], true
		}
	}
	return Level{}, false
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(id string, data []byte, ext string) (core.LevelSpec, error) {
	switch ext {
	case ".json":
		return formats.ParseJSON(id, data)
	case ".yaml", ".yml":
		return formats.ParseYAML(id, data)
	default:
		return core.LevelSpec{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
