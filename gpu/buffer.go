// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// BufferElement is the set of element types a [Buffer] can hold:
// float32 vertex data and uint32 indices.
type BufferElement interface {
	~float32 | ~uint32
}

// Buffer is a GPU buffer populated once with immutable data.
type Buffer struct {
	Target BufferTargets
	Handle uint32

	// Size is the size of the data in bytes.
	Size int

	dev Device
}

// NewBuffer creates a buffer, binds it to target, and uploads data,
// which must not be empty. For an [ElementArrayBuffer] the vertex
// array it belongs to must be bound, and the buffer stays bound to it.
func NewBuffer[T BufferElement](dev Device, target BufferTargets, data []T) *Buffer {
	bf := &Buffer{Target: target, Size: 4 * len(data), dev: dev}
	bf.Handle = dev.GenBuffer()
	dev.BindBuffer(target, bf.Handle)
	dev.BufferData(target, bf.Size, data)
	return bf
}

// Release deletes the buffer. It is safe to call more than once.
func (bf *Buffer) Release() {
	if bf == nil || bf.Handle == 0 {
		return
	}
	bf.dev.DeleteBuffer(bf.Handle)
	bf.Handle = 0
}
