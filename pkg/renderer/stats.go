package renderer

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	TotalRays    int     // total number of rays traced
	TotalSteps   int     // total marching iterations across all rays
	AverageSteps float64 // average marching iterations per ray
	MaxStepsUsed int     // most iterations spent by any single ray
	HitCount     int     // rays that converged on a surface
}

// add accumulates the outcome of a single traced ray
func (fs *FrameStats) add(iterations int, hit bool) {
	fs.TotalRays++
	fs.TotalSteps += iterations
	fs.MaxStepsUsed = max(fs.MaxStepsUsed, iterations)
	if hit {
		fs.HitCount++
	}
}

// merge folds another tile's statistics into this frame's totals
func (fs *FrameStats) merge(other FrameStats) {
	fs.TotalRays += other.TotalRays
	fs.TotalSteps += other.TotalSteps
	fs.MaxStepsUsed = max(fs.MaxStepsUsed, other.MaxStepsUsed)
	fs.HitCount += other.HitCount
}

// finalize computes the derived averages once all tiles are merged
func (fs *FrameStats) finalize() {
	if fs.TotalRays > 0 {
		fs.AverageSteps = float64(fs.TotalSteps) / float64(fs.TotalRays)
	}
}
