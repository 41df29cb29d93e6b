package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/folio/internal/progress"
)

// CollectAssets returns the slash-separated paths under root matching any of
// patterns, sorted and without duplicates. Directories are skipped.
func CollectAssets(root string, patterns []string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid asset pattern %q", p)
		}
		matches, err := doublestar.Glob(fsys, p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", p, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (g *Generator) copyAssets() (int, error) {
	if g.AssetRoot == "" || len(g.Assets) == 0 {
		return 0, nil
	}
	paths, err := CollectAssets(g.AssetRoot, g.Assets)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, nil
	}

	rep := g.Progress
	if rep == nil {
		rep = progress.Nop{}
	}
	rep.Start(len(paths))
	defer rep.Finish()

	outAbs, _ := filepath.Abs(g.OutputDir)
	copied := 0
	for i, rel := range paths {
		src := filepath.Join(g.AssetRoot, filepath.FromSlash(rel))
		// Never copy the output directory into itself.
		if srcAbs, err := filepath.Abs(src); err == nil && isWithin(outAbs, srcAbs) {
			continue
		}
		if err := copyFile(src, filepath.Join(g.OutputDir, filepath.FromSlash(rel))); err != nil {
			return copied, fmt.Errorf("copying %s: %w", rel, err)
		}
		copied++
		rep.Update(i+1, rel)
	}
	return copied, nil
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
