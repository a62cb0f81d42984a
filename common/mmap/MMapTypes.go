package mmap


// MMap is a read-only memory mapped region of a file, viewed as a byte slice.
//	It satisfies the ByteSource contract (Len and Bytes) so a mapping can be hashed without copying.
type MMap []byte
