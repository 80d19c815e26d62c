// Package kv implements the key/value message family: Put, Get, Delete
// and their acks.
package kv

import "io"

// encodedLen runs encode against a byte-counting sink to compute the
// body's exact wire size for Header.Len, per invariant I1.
func encodedLen(encode func(io.Writer) error) (int, error) {
	var counter countingWriter
	if err := encode(&counter); err != nil {
		return 0, err
	}
	return counter.n, nil
}

type countingWriter struct{ n int }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
