package solution

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wcjunkins/tspmerge/tsp"
)

// Ext is the extension of solution files.
const Ext = ".sol"

// ErrMalformedPath is returned by ReadPath for a token that is not a node id.
var ErrMalformedPath = errors.New("solution: malformed path")

// FileName builds the solution file name for a run of algo with the given
// total distance.
func FileName(algo tsp.Algorithm, total float64, suffix string) string {
	var tag string
	if algo != tsp.Merge {
		tag = "[" + strings.ToUpper(algo.String()) + "]"
	}

	return fmt.Sprintf("S%s%s_%s%s", tag, tsp.FormatCost(total), suffix, Ext)
}

// Write stores tour in dir/name and returns the full path. dir is created
// when missing. tour is written as given; solvers already repeat the start.
func Write(dir, name string, tour []int) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create output dir %s", dir)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}
	if err = WritePath(f, tour); err != nil {
		_ = f.Close()
		return "", errors.WithMessagef(err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return "", errors.Wrapf(err, "close %s", path)
	}

	return path, nil
}

// WritePath writes tour to w as one line of space-separated ids.
func WritePath(w io.Writer, tour []int) error {
	var sb strings.Builder
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return errors.Wrap(err, "write path")
}

// ReadPath reads whitespace-separated node ids from r, across any number of
// lines. Range checks are left to the caller, who knows the matrix size.
func ReadPath(r io.Reader) ([]int, error) {
	var (
		sc   = bufio.NewScanner(r)
		path []int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedPath, "token %d: %q", len(path)+1, tok)
		}
		path = append(path, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read path")
	}

	return path, nil
}
