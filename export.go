package imd1

import (
	"errors"
	"sync"
)

// Buffer is an owned byte buffer handed to the caller by Export.
//
// Each Buffer owns its storage. Release drops the reference; a slice
// obtained from Bytes before Release keeps its content. A Buffer is safe
// for concurrent use.
type Buffer struct {
	mu       sync.Mutex
	data     []byte
	released bool
}

func newBuffer(content string) *Buffer {
	return &Buffer{data: []byte(content)}
}

// Bytes returns the buffer content, or nil after Release.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil
	}
	return b.data
}

// String returns a copy of the content, or "" after Release.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return ""
	}
	return string(b.data)
}

// Len returns the content length, or 0 after Release.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return 0
	}
	return len(b.data)
}

// Err reports ErrBufferReleased once the buffer has been released.
func (b *Buffer) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return ErrBufferReleased
	}
	return nil
}

// Release marks the buffer released and drops its storage. A second
// call does nothing and returns ErrBufferReleased.
func (b *Buffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return ErrBufferReleased
	}
	b.released = true
	b.data = nil
	return nil
}

// Export is the boundary form of a conversion: rendered text and encoded
// metadata as two independently owned buffers. Releasing one never
// affects the other.
type Export struct {
	Text *Buffer // rendered output, UTF-8
	Meta *Buffer // metadata encoded with EncodeMetadata
}

// Release releases both buffers. Buffers already released are reported
// with ErrBufferReleased.
func (e *Export) Release() error {
	return errors.Join(e.Text.Release(), e.Meta.Release())
}
