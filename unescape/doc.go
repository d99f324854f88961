// Package unescape decodes JSON string escape sequences inside the storage
// that holds the escaped form. Decoded text is never longer than its escaped
// source, so the original buffer always has room for the result; no second
// buffer is allocated for the decoded strings.
//
// Literal decodes a buffer holding a single string body and splices the
// result back with buffer.Replace. Array walks a JSON array of strings and
// rewrites every element in place through a rewrite.Rewriter, returning
// zero-copy views of the decoded values.
package unescape
