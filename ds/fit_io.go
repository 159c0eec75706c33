package ds

import (
	"encoding/binary"
	"fmt"
	"io"
)

var end = binary.LittleEndian

// bonsaiFitVersion is the current on-disk schema version of BonsaiFit.
// Version 2 added the null-hypothesis log-likelihood.
const bonsaiFitVersion = 2

// bonsaiFitRecord is the fixed-layout form of BonsaiFit written to disk.
// New fields go at the end and bump bonsaiFitVersion.
type bonsaiFitRecord struct {
	Version  int64
	Pos      [3]float64
	Time     float64
	Dir      [3]float64
	LogLike  float64
	LogLike0 float64
}

// Encode writes the fit to w in its versioned binary form.
func (f *BonsaiFit) Encode(w io.Writer) error {
	rec := bonsaiFitRecord{
		Version:  bonsaiFitVersion,
		Pos:      f.pos,
		Time:     f.time,
		Dir:      f.dir,
		LogLike:  f.logLike,
		LogLike0: f.logLike0,
	}
	return binary.Write(w, end, &rec)
}

// DecodeBonsaiFit reads a fit written by Encode. Records written by a
// newer schema version are rejected.
func DecodeBonsaiFit(r io.Reader) (*BonsaiFit, error) {
	var version int64
	if err := binary.Read(r, end, &version); err != nil {
		return nil, err
	}
	if version < 1 || version > bonsaiFitVersion {
		return nil, fmt.Errorf("ds: unsupported BonsaiFit version %d", version)
	}

	f := &BonsaiFit{}
	if err := binary.Read(r, end, &f.pos); err != nil {
		return nil, err
	}
	if err := binary.Read(r, end, &f.time); err != nil {
		return nil, err
	}
	if err := binary.Read(r, end, &f.dir); err != nil {
		return nil, err
	}
	if err := binary.Read(r, end, &f.logLike); err != nil {
		return nil, err
	}
	if version >= 2 {
		if err := binary.Read(r, end, &f.logLike0); err != nil {
			return nil, err
		}
	}
	return f, nil
}
