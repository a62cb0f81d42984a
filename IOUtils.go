package mmh3

import "context"
import "errors"
import "fmt"
import "io"
import "os"
import "runtime"

import "github.com/sirgallo/logger"
import "golang.org/x/sync/errgroup"

import "github.com/sirgallo/mmh3/common/mmap"


//============================================= MMH3 IO Utils


var cLog = logger.NewCustomLog("MMH3")


// HashReader
//	Stream r into a fresh hasher until EOF, checking ctx between reads.
//
// Parameters:
//	ctx: cancels the read loop
//	r: the stream to hash
//	variant: the algorithm
//	seed: initial lane value
//
// Returns:
//	The digest of everything read, or the first read or context error
func HashReader(ctx context.Context, r io.Reader, variant Variant, seed uint32) (Digest, error) {
	h := New(variant, seed)

	_, copyErr := copyInto(ctx, h, r)
	if copyErr != nil { return Digest{}, copyErr }

	return h.Digest(), nil
}

// HashFile
//	Hash the contents of the file at path.
//	Regular files are memory mapped read-only, pipes, devices and size-less pseudo files are read until EOF.
func HashFile(ctx context.Context, path string, variant Variant, seed uint32) (Digest, error) {
	h := New(variant, seed)

	_, hashErr := hashFileInto(ctx, path, h)
	if hashErr != nil { return Digest{}, hashErr }

	return h.Digest(), nil
}

// HashFiles
//	Hash many files concurrently, at most opts.Workers at a time.
//	Every worker owns a clone of one seeded hasher, no state is shared between files.
//	The first failure cancels the remaining work.
//
// Returns:
//	One FileDigest per path in input order, or the first error
func HashFiles(ctx context.Context, paths []string, opts HashFilesOpts) ([]FileDigest, error) {
	if ! opts.Variant.Valid() { return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidArgument, uint8(opts.Variant)) }

	workers := opts.Workers
	if workers <= 0 { workers = runtime.GOMAXPROCS(0) }

	prototype := New(opts.Variant, opts.Seed)
	results := make([]FileDigest, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for idx, path := range paths {
		idx, path := idx, path
		group.Go(func() error {
			h := prototype.Clone()

			size, hashErr := hashFileInto(groupCtx, path, h)
			if hashErr != nil {
				if ! errors.Is(hashErr, context.Canceled) { cLog.Error("error hashing file:", path, hashErr.Error()) }
				return fmt.Errorf("hashing %s: %w", path, hashErr)
			}

			results[idx] = FileDigest{ Path: path, Size: size, Digest: h.Digest() }
			return nil
		})
	}

	waitErr := group.Wait()
	if waitErr != nil { return nil, waitErr }

	cLog.Debug("hashed files:", len(results), "variant:", opts.Variant.String())
	return results, nil
}

// hashFileInto
//	Write the contents of the file at path into h, returning the number of bytes written.
//	Regular files with a size are memory mapped. Everything else, empty files, pipes, devices and
//	procfs or sysfs entries that report a size of 0, is streamed from the open descriptor.
func hashFileInto(ctx context.Context, path string, h *Hasher) (int64, error) {
	ctxErr := ctx.Err()
	if ctxErr != nil { return 0, ctxErr }

	file, openErr := os.Open(path)
	if openErr != nil { return 0, openErr }

	defer file.Close()

	info, statErr := file.Stat()
	if statErr != nil { return 0, statErr }

	if ! info.Mode().IsRegular() || info.Size() == 0 { return copyInto(ctx, h, file) }

	mMap, mapErr := mmap.Map(file)
	if mapErr != nil { return 0, mapErr }

	defer mMap.Unmap()

	return writeSource(ctx, h, mMap)
}

// writeSource
//	Write a byte source into h in chunks so that a cancelled ctx stops a large file early.
func writeSource(ctx context.Context, h *Hasher, source ByteSource) (int64, error) {
	data := source.Bytes()
	chunk := readChunkSize * 16
	var written int64

	for len(data) > 0 {
		ctxErr := ctx.Err()
		if ctxErr != nil { return written, ctxErr }

		n := min(chunk, len(data))
		h.Write(data[:n])

		written += int64(n)
		data = data[n:]
	}

	return written, nil
}

// copyInto
//	Like io.Copy, with a context check between reads.
func copyInto(ctx context.Context, h *Hasher, r io.Reader) (int64, error) {
	buf := make([]byte, readChunkSize)
	var written int64

	for {
		ctxErr := ctx.Err()
		if ctxErr != nil { return written, ctxErr }

		n, readErr := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			written += int64(n)
		}

		if readErr == io.EOF { return written, nil }
		if readErr != nil { return written, readErr }
	}
}
