package snapshot

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/kelindar/binary"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newPopulatedMap(t *testing.T) *roadmap.Map {
	m := roadmap.NewMap(roadmap.WithMaxRouteID(50))
	require.NoError(t, m.AddRoad("Alpha", "Beta", 10, 2000))
	require.NoError(t, m.AddRoad("Beta", "Gamma", 4, -12))
	require.NoError(t, m.AddRoad("Gamma", "Delta", 1, 1999))
	require.NoError(t, m.AddRoad("Beta", "Delta", 9, 2021))
	require.NoError(t, m.AddRoad("Gamma", "Zeta", 1, 2010))
	require.NoError(t, m.AddRoad("Zeta", "Delta", 1, 2010))
	require.NoError(t, m.NewRoute(5, "Alpha", "Beta"))
	require.NoError(t, m.ExtendRoute(5, "Delta"))
	require.NoError(t, m.DefineRoute(50, []string{"Epsilon", "Gamma"}, []uint32{3}, []int32{1}))
	return m
}

func TestEncodeDecode(t *testing.T) {
	m := newPopulatedMap(t)

	data, err := Encode(m)
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, m.State(), restored.State())
	assert.Equal(t, uint32(50), restored.MaxRouteID())
	for _, id := range m.RouteIDs() {
		assert.Equal(t, m.GetRouteDescription(id), restored.GetRouteDescription(id))
	}

	// restored map keeps working
	assert.NoError(t, restored.RemoveRoad("Gamma", "Delta"))
	assert.Equal(t, "5;Alpha;10;2000;Beta;4;-12;Gamma;1;2010;Zeta;1;2010;Delta", restored.GetRouteDescription(5))
	assert.Equal(t, "5;Alpha;10;2000;Beta;4;-12;Gamma;1;1999;Delta", m.GetRouteDescription(5))
}

func TestEncodeDecodeRandomRoads(t *testing.T) {
	rand.Seed(42)
	m := roadmap.NewMap()
	for i := 0; i < 200; i++ {
		a := fmt.Sprintf("city-%d", rand.Intn(60))
		b := fmt.Sprintf("city-%d", rand.Intn(60))
		_ = m.AddRoad(a, b, uint32(rand.Intn(100)+1), int32(rand.Intn(4000)-2000))
	}

	data, err := Encode(m)
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, m.State(), restored.State())
}

func compressed(t *testing.T, raw []byte) []byte {
	var buf bytes.Buffer
	require.NoError(t, compressData(raw, &buf))
	return buf.Bytes()
}

func TestDecodeCorrupted(t *testing.T) {
	_, err := Decode([]byte("not a snapshot"))
	assert.ErrorIs(t, err, ErrCorrupted)

	raw, err := binary.Marshal(snapshotFile{Version: formatVersion})
	require.NoError(t, err)

	// slice length prefix claiming far more elements than the snapshot holds
	forgedLength := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}
	for offset := 2; offset <= 4 && offset <= len(raw); offset++ {
		forged := make([]byte, 0, len(raw)+len(forgedLength))
		forged = append(forged, raw[:offset]...)
		forged = append(forged, forgedLength...)
		forged = append(forged, raw[offset:]...)

		data := compressed(t, forged)
		assert.NotPanics(t, func() {
			_, err = Decode(data)
		})
		assert.ErrorIs(t, err, ErrCorrupted, "offset %d", offset)
	}
}

func TestDecodeTooLarge(t *testing.T) {
	old := maxDecodedSize
	maxDecodedSize = 1 << 20
	defer func() { maxDecodedSize = old }()

	data := compressed(t, make([]byte, 8<<20))
	assert.Less(t, len(data), 1<<20)

	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrCorrupted)

	var out bytes.Buffer
	err = decompressData(data, &out, 1<<20)
	assert.Error(t, err)
	assert.LessOrEqual(t, out.Len(), 1<<20+1)
}

func TestDecodeEmptyMap(t *testing.T) {
	data, err := Encode(roadmap.NewMap())
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 0, restored.NumCities())
	assert.Empty(t, restored.RouteIDs())
}
