package concurrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	jobs := 100
	wp := NewWorkerPool[DetourJob, int](8, jobs)
	for i := 0; i < jobs; i++ {
		wp.AddJob(NewDetourJob(i, uint32(i+1), int32(i), int32(i+1), nil))
	}
	wp.Close()
	wp.Start(func(job DetourJob) int {
		return job.Index * 2
	})
	wp.Wait()

	seen := make([]bool, jobs)
	count := 0
	for res := range wp.CollectResults() {
		assert.Equal(t, 0, res%2)
		seen[res/2] = true
		count++
	}
	assert.Equal(t, jobs, count)
	for i := range seen {
		assert.True(t, seen[i], "job %d", i)
	}
}

func TestWorkerPoolNoJobs(t *testing.T) {
	wp := NewWorkerPool[[]int32, int](0, 0)
	wp.Close()
	wp.Start(func(job []int32) int {
		return len(job)
	})
	wp.Wait()

	_, ok := <-wp.CollectResults()
	assert.False(t, ok)
}
