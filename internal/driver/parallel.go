package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"doclint/internal/diag"
	"doclint/internal/source"
)

// CollectFiles expands targets (files or directories) into a sorted,
// deduplicated list of source file paths. Directories are walked
// recursively; files are taken as-is regardless of extension.
func CollectFiles(targets []string, extensions []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", target, err)
		}
		if !info.IsDir() {
			add(target)
			continue
		}
		found, err := listSourceFiles(target, extensions)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			add(path)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// CheckFiles loads the given files into a shared FileSet and checks
// them concurrently. Files are loaded up front so the FileSet is
// read-only while workers run; results keep the input order.
func CheckFiles(ctx context.Context, paths []string, opts Options) (*DirResult, error) {
	return checkFiles(ctx, source.NewFileSet(), paths, opts)
}

// CheckDir walks dir for matching source files and checks them.
func CheckDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	paths, err := listSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, err
	}
	return checkFiles(ctx, source.NewFileSetWithBase(dir), paths, opts)
}

func checkFiles(ctx context.Context, fileSet *source.FileSet, paths []string, opts Options) (*DirResult, error) {
	out := &DirResult{
		FileSet: fileSet,
		Results: make([]*CheckResult, len(paths)),
	}

	for i, path := range paths {
		res := &CheckResult{
			Path:    path,
			FileSet: fileSet,
			Bag:     diag.NewBag(opts.maxDiagnostics()),
		}
		out.Results[i] = res

		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			res.Bag.Add(diag.NewError(
				diag.IOLoadFileError,
				source.Span{},
				fmt.Sprintf("failed to load %s: %v", path, loadErr),
			))
			sendEvent(opts.Progress, Event{Path: path, Status: StatusError, Err: loadErr})
			continue
		}
		res.FileID = fileID
		sendEvent(opts.Progress, Event{Path: path, Status: StatusQueued})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs())

	for _, res := range out.Results {
		// Only load failures can be in the bag at this point.
		if res.Bag.HasErrors() {
			continue
		}
		res := res
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sendEvent(opts.Progress, Event{Path: res.Path, Status: StatusChecking})
			checkLoaded(fileSet.Get(res.FileID), opts, res)
			sendEvent(opts.Progress, Event{
				Path:       res.Path,
				Status:     StatusDone,
				Violations: res.Violations,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}

func sendEvent(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}

// listSourceFiles collects files under root whose extension matches,
// skipping hidden directories. The result is sorted so runs are
// deterministic regardless of walk order.
func listSourceFiles(root string, extensions []string) ([]string, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
