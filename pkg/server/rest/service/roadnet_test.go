package service

import (
	"context"
	"sync"
	"testing"

	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/lintang-b-s/roadnet/pkg/server"
	"github.com/lintang-b-s/roadnet/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *RoadNetworkService {
	svc := NewRoadNetworkService(roadmap.NewMap(), snapshot.Codec{})
	ctx := context.Background()
	require.NoError(t, svc.AddRoad(ctx, "A", "B", 1, 2000))
	require.NoError(t, svc.AddRoad(ctx, "B", "C", 1, 2000))
	require.NoError(t, svc.AddRoad(ctx, "B", "D", 1, 1999))
	require.NoError(t, svc.AddRoad(ctx, "D", "C", 2, 2001))
	return svc
}

func TestRoadNetworkServiceErrorCodes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.AddRoad(ctx, "A", "B", 1, 1)
	assert.ErrorIs(t, err, roadmap.ErrRoadExists)
	assert.Equal(t, server.ErrConflict, server.CodeOf(err))

	err = svc.AddRoad(ctx, "A", "A", 1, 1)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	_, err = svc.GetRoad(ctx, "A", "Z")
	assert.Equal(t, server.ErrNotFound, server.CodeOf(err))

	require.NoError(t, svc.AddRoad(ctx, "X", "Y", 1, 1))
	_, err = svc.NewRoute(ctx, 1, "A", "X")
	assert.Equal(t, server.ErrUnprocessable, server.CodeOf(err))

	_, err = svc.GetRoute(ctx, 9)
	assert.Equal(t, server.ErrNotFound, server.CodeOf(err))
}

func TestRoadNetworkServiceRoutes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.NewRoute(ctx, 1, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "1;A;1;2000;B;1;2000;C", view.Description)
	assert.Equal(t, []string{"A", "B", "C"}, view.Cities)

	require.NoError(t, svc.RemoveRoad(ctx, "B", "C"))
	view, err = svc.GetRoute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, view.Cities)

	view, err = svc.DefineRoute(ctx, 2, []string{"C", "E"}, []uint32{4}, []int32{2020})
	require.NoError(t, err)
	assert.Equal(t, "2;C;4;2020;E", view.Description)

	_, err = svc.ExtendRoute(ctx, 2, "C")
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	require.NoError(t, svc.AddRoad(ctx, "X", "Y", 1, 1))
	_, err = svc.ExtendRoute(ctx, 2, "X")
	assert.ErrorIs(t, err, roadmap.ErrNoExtension)
	assert.Equal(t, server.ErrUnprocessable, server.CodeOf(err))

	view, err = svc.ExtendRoute(ctx, 1, "E")
	require.NoError(t, err)
	assert.Equal(t, "1;A;1;2000;B;1;1999;D;2;2001;C;4;2020;E", view.Description)

	assert.Equal(t, []uint32{1, 2}, svc.ListRoutes(ctx))
	require.NoError(t, svc.RemoveRoute(ctx, 2))
	assert.Equal(t, []uint32{1}, svc.ListRoutes(ctx))
}

func TestRoadNetworkServiceSnapshot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.NewRoute(ctx, 3, "A", "D")
	require.NoError(t, err)

	data, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveRoute(ctx, 3))
	require.NoError(t, svc.RestoreSnapshot(ctx, data))

	view, err := svc.GetRoute(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "3;A;1;2000;B;1;1999;D", view.Description)

	err = svc.RestoreSnapshot(ctx, []byte("garbage"))
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))
	_, err = svc.GetRoute(ctx, 3)
	assert.NoError(t, err)
}

func TestRoadNetworkServiceConcurrent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(routeID uint32) {
			defer wg.Done()
			_, err := svc.NewRoute(ctx, routeID, "A", "C")
			assert.NoError(t, err)
			_, err = svc.GetRoute(ctx, routeID)
			assert.NoError(t, err)
		}(uint32(i))
	}
	wg.Wait()

	assert.Len(t, svc.ListRoutes(ctx), 20)
}
