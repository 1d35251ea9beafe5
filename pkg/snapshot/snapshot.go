package snapshot

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/kelindar/binary"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
)

const formatVersion uint16 = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrCorrupted          = errors.New("corrupted snapshot")
)

type snapshotFile struct {
	Version uint16
	State   roadmap.State
}

/*
Encode. serialize every city, road and route of m.

	roadmap.State --kelindar/binary--> bytes --zstd--> snapshot
*/
func Encode(m *roadmap.Map) ([]byte, error) {
	encoded, err := binary.Marshal(snapshotFile{
		Version: formatVersion,
		State:   m.State(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode road network: %w", err)
	}

	var out bytes.Buffer
	if err := compressData(encoded, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode. rebuild the road network encoded by Encode. opts are applied on top of the stored route id limit.
func Decode(data []byte, opts ...roadmap.Option) (*roadmap.Map, error) {
	var decompressed bytes.Buffer
	if err := decompressData(data, &decompressed, maxDecodedSize); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}

	file, err := unmarshalFile(decompressed.Bytes())
	if err != nil {
		return nil, err
	}
	if file.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}

	return roadmap.FromState(file.State, opts...)
}

// unmarshalFile. a forged length prefix makes binary.Unmarshal panic on allocation, it is reported as ErrCorrupted.
func unmarshalFile(data []byte) (file snapshotFile, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCorrupted, r)
		}
	}()

	if uerr := binary.Unmarshal(data, &file); uerr != nil {
		return snapshotFile{}, fmt.Errorf("%w: %w", ErrCorrupted, uerr)
	}
	return file, nil
}

// Codec. Encode & Decode as methods, for callers that take the snapshot format as a dependency.
type Codec struct {
	opts []roadmap.Option
}

// NewCodec. opts are applied to every decoded map.
func NewCodec(opts ...roadmap.Option) Codec {
	return Codec{opts: opts}
}

func (c Codec) Encode(m *roadmap.Map) ([]byte, error) {
	return Encode(m)
}

func (c Codec) Decode(data []byte) (*roadmap.Map, error) {
	return Decode(data, c.opts...)
}
