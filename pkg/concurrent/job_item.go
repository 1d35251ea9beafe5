package concurrent

// DetourJob. search for a path gapStart->gapEnd that avoids the cities of route RouteID.
type DetourJob struct {
	Index    int
	RouteID  uint32
	GapStart int32
	GapEnd   int32
	Excluded []int32
}

func NewDetourJob(index int, routeID uint32, gapStart, gapEnd int32, excluded []int32) DetourJob {
	return DetourJob{
		Index:    index,
		RouteID:  routeID,
		GapStart: gapStart,
		GapEnd:   gapEnd,
		Excluded: excluded,
	}
}

type JobI interface {
	DetourJob | []int32
}

type JobFunc[T JobI, G any] func(job T) G
