package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// maxDecodedSize. upper bound of a decompressed snapshot.
var maxDecodedSize int64 = 256 << 20

var ErrTooLarge = errors.New("decompressed snapshot is too large")

func compressData(inData []byte, bbufOut *bytes.Buffer) error {
	inputBuf := bytes.NewBuffer(inData)
	encoder, err := zstd.NewWriter(bbufOut, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	_, err = io.Copy(encoder, inputBuf)
	if err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}

// decompressData. fails with ErrTooLarge once more than limit bytes were decoded.
func decompressData(inData []byte, out io.Writer, limit int64) error {
	d, err := zstd.NewReader(bytes.NewReader(inData), zstd.WithDecoderMaxMemory(uint64(limit)))
	if err != nil {
		return fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer d.Close()

	n, err := io.Copy(out, io.LimitReader(d, limit+1))
	if err != nil {
		return err
	}
	if n > limit {
		return fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return nil
}
