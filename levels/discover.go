package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/rhpo/tilequest/internal/logs"
)

const dataSuffix = ".csv"

var ErrBadLevelName = errors.New("level file name is not a number")

var logger = logs.Get("levels")

// Discover lists the level IDs available in dir, one per <id>.csv file.
func Discover(dir string) ([]ID, error) {
	return discover(os.DirFS(dir), ".", dir)
}

// DiscoverFS is Discover over an arbitrary filesystem, e.g. an embed.FS.
// Hidden files, directories and non-CSV files are ignored.
func DiscoverFS(fsys fs.FS, dir string) ([]ID, error) {
	return discover(fsys, dir, dir)
}

func discover(fsys fs.FS, dir, label string) ([]ID, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read level dir %s: %w", label, err)
	}

	var ids []ID
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || path.Ext(name) != dataSuffix {
			continue
		}

		stem := strings.TrimSuffix(name, dataSuffix)
		n, err := strconv.Atoi(stem)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadLevelName, name)
		}
		ids = append(ids, ID(n))
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	logger.Infof("detected available levels: %v", ids)
	return ids, nil
}
