package generate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/phobologic/typeshare/internal/discover"
	"github.com/phobologic/typeshare/internal/logging"
)

// Result is the outcome for one input of a batch run.
type Result struct {
	// Path is the input, relative to the batch root.
	Path string
	// Output is the written file, empty when generation failed.
	Output string
	Err    error
}

// Batch generates one output file per Rust source under root, mirroring the
// directory layout below outDir. Inputs run on a worker pool, each worker
// with its own Generator. Results come back in discovery order. The returned
// error covers discovery and setup only; per-file failures are in the
// results.
func Batch(ctx context.Context, root, outDir string, opts Options) ([]Result, error) {
	// Resolve the backend once up front so a bad name fails the whole run.
	probe, err := New(opts)
	if err != nil {
		return nil, err
	}

	files, err := discover.Files(root)
	if err != nil {
		return nil, errors.Wrapf(err, "discovering files under %s", root)
	}
	log := logging.OrNop(opts.Logger)
	log.Debugw("discovered sources", logging.FieldCount, len(files))

	results := make([]Result, len(files))
	if len(files) == 0 {
		return results, nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := range numWorkers {
		wg.Add(1)
		go func(g *Generator) {
			defer wg.Done()
			for idx := range work {
				results[idx] = g.batchFile(ctx, root, outDir, files[idx].Path)
			}
		}(workerGenerator(w, probe, opts))
	}
	wg.Wait()

	return results, nil
}

// workerGenerator reuses the probe for the first worker.
func workerGenerator(w int, probe *Generator, opts Options) *Generator {
	if w == 0 {
		return probe
	}
	g, _ := New(opts) // backend already resolved by the probe
	return g
}

func (g *Generator) batchFile(ctx context.Context, root, outDir, rel string) Result {
	res := Result{Path: rel}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	var buf bytes.Buffer
	if err := g.File(ctx, filepath.Join(root, rel), &buf); err != nil {
		res.Err = err
		return res
	}

	out := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+g.Extension())
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		res.Err = errors.Wrapf(err, "creating %s", filepath.Dir(out))
		return res
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		res.Err = errors.Wrapf(err, "writing %s", out)
		return res
	}
	g.log.Debugw("wrote output", logging.FieldFile, rel, "output", out)
	res.Output = out
	return res
}
