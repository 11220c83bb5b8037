// Package discover collects input files from a file or directory tree.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Files returns every file under root whose extension matches one of exts
// (case-insensitive), in natural order: digit runs compare by value, so
// frame2 sorts before frame10. If root is a file it is returned when it matches.
// Unreadable subdirectories are skipped.
func Files(root string, exts ...string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("discover: stat %s: %w", root, err)
	}
	if !info.IsDir() {
		if hasExt(root, exts) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var out []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !hasExt(path, exts) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover: walk %s: %w", root, err)
	}

	slices.SortFunc(out, NaturalCompare)
	return out, nil
}

// Models returns model files under root. Within one directory a .glb wins
// over a .gltf with the same stem (the binary is the packed export).
func Models(root string) ([]string, error) {
	paths, err := Files(root, ".glb", ".gltf")
	if err != nil {
		return nil, err
	}

	// dir + lowercase stem → path
	picked := make(map[string]string, len(paths))
	for _, p := range paths {
		key := filepath.Join(filepath.Dir(p), strings.ToLower(stem(p)))
		existing, ok := picked[key]
		if !ok || (strings.EqualFold(filepath.Ext(p), ".glb") && !strings.EqualFold(filepath.Ext(existing), ".glb")) {
			picked[key] = p
		}
	}

	out := make([]string, 0, len(picked))
	for _, p := range picked {
		out = append(out, p)
	}
	slices.SortFunc(out, NaturalCompare)
	return out, nil
}

// NaturalCompare orders a and b like strings.Compare, except that runs of
// ASCII digits compare by numeric value. Equal values with different zero
// padding fall back to plain comparison so the order stays total.
func NaturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				return cmpInt(len(na), len(nb))
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			continue
		}
		if a[i] != b[j] {
			return cmpInt(int(a[i]), int(b[j]))
		}
		i++
		j++
	}
	if c := cmpInt(len(a)-i, len(b)-j); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func hasExt(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
