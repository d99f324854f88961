// Package rewrite provides a read/write cursor for transforming a buffer's
// text in place. It is built for transformations that never grow the text,
// such as decoding escape sequences: the write cursor trails the read cursor
// through the same storage, so the decoded form overwrites the encoded form
// as it is consumed.
//
// A Rewriter maintains the invariant 0 <= write <= read <= len(region). The
// bytes between the two cursors form the gap: already consumed, not yet
// rewritten. Gap content is unspecified until Sync, which space-fills it to
// restore a contiguous valid-UTF-8 region.
//
// Typical use decodes through the cursor and detaches finished segments:
//
//	err := rewrite.Do(buf, func(rw *rewrite.Rewriter) error {
//	    for {
//	        r, ok := rw.ReadRune()
//	        if !ok {
//	            return nil
//	        }
//	        if r == '\\' {
//	            // decode the escape, then write the decoded rune
//	            ...
//	            continue
//	        }
//	        if err := rw.WriteRune(r); err != nil {
//	            return err
//	        }
//	    }
//	})
//
// Do finishes the rewriter on the way out, space-filling any remaining gap
// and verifying the region is still valid UTF-8.
//
// The rewriter holds a mutable view of the buffer's storage: the buffer must
// not be read or mutated by anything else until Finish (or Do) returns.
package rewrite
