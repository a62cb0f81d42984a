package mmap

import "errors"
import "fmt"
import "os"
import "golang.org/x/sys/unix"


//============================================= MMap


var (
	// ErrEmptyFile is returned when mapping a zero length region, which mmap(2) rejects.
	ErrEmptyFile = errors.New("cannot memory map an empty file")
	// ErrNotRegular is returned for directories, pipes, devices and other files without a fixed size.
	ErrNotRegular = errors.New("cannot memory map a file that is not regular")
)


// Map
//	Memory map an entire regular file read-only and advise the kernel it will be read sequentially.
//	The file may be closed afterwards, the mapping stays valid until Unmap.
//
// Parameters:
//	file: the open file to be memory mapped
//
// Returns:
//	The read-only mapping or an error, ErrNotRegular or ErrEmptyFile when there is nothing to map
func Map(file *os.File) (MMap, error) {
	mMap, mapErr := MapRegion(file, -1, 0)
	if mapErr != nil { return nil, mapErr }

	adviseErr := mMap.AdviseSequential()
	if adviseErr != nil {
		mMap.Unmap()
		return nil, adviseErr
	}

	return mMap, nil
}

// MapRegion 
//	Memory maps a region of a regular file read-only.
//
// Parameters:
// 	file: the file to be memory mapped
//	length: the length in bytes to be mapped, -1 for everything after offset
//	offset: where the region starts, must be page aligned
//	
// Returns:
//	The byte array representation of the memory mapped region or an error
func MapRegion(file *os.File, length int, offset int64) (MMap, error) {
	if offset % int64(os.Getpagesize()) != 0 {
		return nil, fmt.Errorf("offset %d is not a multiple of the page size %d", offset, os.Getpagesize())
	}

	fileStat, statErr := file.Stat()
	if statErr != nil { return nil, statErr }
	if ! fileStat.Mode().IsRegular() { return nil, fmt.Errorf("%w: %s", ErrNotRegular, file.Name()) }

	if length < 0 { length = int(fileStat.Size() - offset) }
	if length <= 0 { return nil, ErrEmptyFile }

	bytes, mmapErr := unix.Mmap(int(file.Fd()), offset, length, unix.PROT_READ, unix.MAP_SHARED)
	if mmapErr != nil { return nil, mmapErr }
	
	return bytes, nil
}

// AdviseSequential
//	Hint the kernel that the mapping will be read front to back, as a hash pass does.
func (mapped MMap) AdviseSequential() error {
	return unix.Madvise(mapped, unix.MADV_SEQUENTIAL)
}

// Len returns the mapped length in bytes.
func (mapped MMap) Len() int { return len(mapped) }

// Bytes returns the mapping itself, no copy is made.
func (mapped MMap) Bytes() []byte { return mapped }

// Unmap 
//	Unmaps the byte slice from the memory mapped file.
func (mapped MMap) Unmap() error {
	return unix.Munmap(mapped)
}
