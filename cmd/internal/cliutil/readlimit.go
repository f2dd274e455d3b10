package cliutil

import (
	"fmt"
	"io"
)

// ReadWithLimit reads r fully, rejecting input past maxSize bytes. maxSize
// == -1 disables the limit, matching the source's own maxpubkeyfilesize
// convention (re-architected here as an explicit, threaded-through
// configuration value rather than a mutable global).
func ReadWithLimit(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize < 0 {
		return io.ReadAll(r)
	}

	limited := io.LimitReader(r, maxSize+1)

	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("input exceeds maximum key file size of %d bytes", maxSize)
	}

	return data, nil
}
