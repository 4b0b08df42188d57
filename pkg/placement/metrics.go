package placement

import "time"

// Metrics carries running counts and running-average durations for the
// two core operations. Averages are updated incrementally; raw samples
// are not kept.
type Metrics struct {
	DetectionCount    int64
	AvgDetectionTime  time.Duration
	ResolutionCount   int64
	AvgResolutionTime time.Duration
}

func (m *Metrics) recordDetection(d time.Duration) {
	m.DetectionCount++
	m.AvgDetectionTime += (d - m.AvgDetectionTime) / time.Duration(m.DetectionCount)
}

func (m *Metrics) recordResolution(d time.Duration) {
	m.ResolutionCount++
	m.AvgResolutionTime += (d - m.AvgResolutionTime) / time.Duration(m.ResolutionCount)
}
