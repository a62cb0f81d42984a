package mmh3

import "bytes"
import "context"
import "errors"
import "os"
import "path/filepath"
import "strconv"
import "testing"
import "testing/iotest"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "go.uber.org/goleak"
import "golang.org/x/sys/unix"


func writeFiles(t *testing.T, count int) ([]string, [][]byte) {
	dir := t.TempDir()
	paths := make([]string, count)
	contents := make([][]byte, count)

	for idx := 0; idx < count; idx++ {
		contents[idx] = generateInput(idx * 997, int64(idx))
		paths[idx] = filepath.Join(dir, "file" + strconv.Itoa(idx))
		require.NoError(t, os.WriteFile(paths[idx], contents[idx], 0644))
	}

	return paths, contents
}

func TestHashFile(t *testing.T) {
	paths, contents := writeFiles(t, 3)

	for _, variant := range allVariants {
		for idx, path := range paths {
			digest, hashErr := HashFile(context.Background(), path, variant, 17)
			require.NoError(t, hashErr)
			assert.Truef(t, SumBytes(variant, contents[idx], 17).Equal(digest), "%s %s", variant, path)
		}
	}

	t.Run("Test Missing File", func(t *testing.T) {
		_, missingErr := HashFile(context.Background(), filepath.Join(t.TempDir(), "missing"), Variant32, 0)
		assert.ErrorIs(t, missingErr, os.ErrNotExist)
	})

	t.Run("Test Empty File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		digest, hashErr := HashFile(context.Background(), path, Variant128x64, 17)
		require.NoError(t, hashErr)
		assert.True(t, SumBytes(Variant128x64, nil, 17).Equal(digest))
	})

	t.Run("Test Directory", func(t *testing.T) {
		_, dirErr := HashFile(context.Background(), t.TempDir(), Variant32, 0)
		assert.Error(t, dirErr)
	})

	t.Run("Test Cancelled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, cancelErr := HashFile(ctx, paths[1], Variant32, 0)
		assert.ErrorIs(t, cancelErr, context.Canceled)
	})
}

func TestHashReader(t *testing.T) {
	data := generateInput(3 * readChunkSize + 5, 9)

	digest, hashErr := HashReader(context.Background(), iotest.HalfReader(bytes.NewReader(data)), Variant128x64, 1)
	require.NoError(t, hashErr)
	assert.True(t, SumBytes(Variant128x64, data, 1).Equal(digest))

	failing := errors.New("disk on fire")
	_, readErr := HashReader(context.Background(), iotest.ErrReader(failing), Variant32, 0)
	assert.ErrorIs(t, readErr, failing)
}

func TestHashFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	paths, contents := writeFiles(t, 12)

	t.Run("Test Results Keep Input Order", func(t *testing.T) {
		results, hashErr := HashFiles(context.Background(), paths, HashFilesOpts{ Variant: Variant128x86, Seed: 3, Workers: 4 })
		require.NoError(t, hashErr)
		require.Len(t, results, len(paths))

		for idx, result := range results {
			assert.Equal(t, paths[idx], result.Path)
			assert.Equal(t, int64(len(contents[idx])), result.Size)
			assert.True(t, SumBytes(Variant128x86, contents[idx], 3).Equal(result.Digest))
		}
	})

	t.Run("Test First Error Is Returned", func(t *testing.T) {
		withMissing := append(append([]string{}, paths...), filepath.Join(t.TempDir(), "missing"))

		_, hashErr := HashFiles(context.Background(), withMissing, HashFilesOpts{ Variant: Variant32 })
		assert.ErrorIs(t, hashErr, os.ErrNotExist)
	})

	t.Run("Test Unknown Variant", func(t *testing.T) {
		_, hashErr := HashFiles(context.Background(), paths, HashFilesOpts{ Variant: Variant(5) })
		assert.ErrorIs(t, hashErr, ErrInvalidArgument)
	})
}

func TestHashFileUnsized(t *testing.T) {
	t.Run("Test Named Pipe", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pipe")
		require.NoError(t, unix.Mkfifo(path, 0644))

		content := generateInput(3 * readChunkSize + 11, 4)
		writeDone := make(chan error, 1)
		go func() { writeDone <- os.WriteFile(path, content, 0644) }()

		digest, hashErr := HashFile(context.Background(), path, Variant128x64, 7)
		require.NoError(t, hashErr)
		require.NoError(t, <- writeDone)

		assert.True(t, SumBytes(Variant128x64, content, 7).Equal(digest))
	})

	t.Run("Test Proc File Reporting Zero Size", func(t *testing.T) {
		const path = "/proc/self/cmdline"

		info, statErr := os.Stat(path)
		if statErr != nil { t.Skip("procfs not available") }
		require.Zero(t, info.Size())

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		require.NotEmpty(t, content)

		digest, hashErr := HashFile(context.Background(), path, Variant32, 0)
		require.NoError(t, hashErr)
		assert.Equal(t, Hash32(content, 0), digest.Uint32())
		assert.NotEqual(t, Hash32(nil, 0), digest.Uint32())
	})

	t.Run("Test Hash Files Mixes Sources", func(t *testing.T) {
		paths, contents := writeFiles(t, 2)
		pipe := filepath.Join(t.TempDir(), "pipe")
		require.NoError(t, unix.Mkfifo(pipe, 0644))

		writeDone := make(chan error, 1)
		go func() { writeDone <- os.WriteFile(pipe, []byte("from a pipe"), 0644) }()

		results, hashErr := HashFiles(context.Background(), append(paths, pipe), HashFilesOpts{ Variant: Variant32 })
		require.NoError(t, hashErr)
		require.NoError(t, <- writeDone)
		require.Len(t, results, 3)

		assert.True(t, SumBytes(Variant32, contents[1], 0).Equal(results[1].Digest))
		assert.True(t, SumBytes(Variant32, []byte("from a pipe"), 0).Equal(results[2].Digest))
		assert.Equal(t, int64(len("from a pipe")), results[2].Size)
	})
}
