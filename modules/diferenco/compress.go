package diferenco

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// CompressTo writes p's unified diff text to w, zstd-compressed. This is a
// convenience for callers who want to persist a patch compactly; it stays
// within "no I/O beyond byte buffers" since w is whatever the caller already
// owns, not a file or socket this package opens itself.
func (p *Patch) CompressTo(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := enc.Write(p.Bytes()); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// CompressTo is the BytePatch counterpart of Patch.CompressTo.
func (p *BytePatch) CompressTo(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := enc.Write(p.Bytes()); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// DecompressPatch reads a zstd-compressed unified diff from r and parses it.
func DecompressPatch(r io.Reader) (*Patch, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}
	return ParsePatch(string(data))
}

// DecompressBytePatch is the BytePatch counterpart of DecompressPatch.
func DecompressBytePatch(r io.Reader) (*BytePatch, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}
	return ParseBytePatch(data)
}
