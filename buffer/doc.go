// Package buffer provides a fixed-capacity UTF-8 text buffer that supports
// in-place replacement of its content. It is the storage primitive for
// parsers that want to rewrite a text value inside its original allocation
// instead of allocating a second buffer for the transformed result.
//
// A Buffer owns a contiguous byte region whose capacity is fixed at creation.
// The first Len() bytes are always valid UTF-8; bytes between Len() and Cap()
// are slack left behind by earlier, longer content and are never read.
//
// Basic usage:
//
//	// Wrap some text in an owned buffer
//	buf := buffer.NewFromString("hello")
//
//	// Overwrite it in place with shorter content
//	if err := buf.ReplaceString("hi"); err != nil {
//	    // handle buffer.ErrCapacityExceeded / buffer.ErrInvalidUTF8
//	}
//
//	buf.String() // "hi"
//	buf.Cap()    // 5, the original storage size
//
// Replacement never reallocates: the buffer's identity (see ID) is assigned
// once at creation and survives every mutation.
//
// Concurrency:
//
// A Buffer is not internally locked. Replace requires exclusive access to the
// buffer for its duration; callers must guarantee that no other reader or
// writer touches the buffer while a mutation is in flight. This mirrors an
// exclusive mutable borrow: any view previously derived from the buffer
// (Bytes, or rewriter prefixes) is invalidated by a subsequent mutation.
package buffer
