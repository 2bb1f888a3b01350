package rover

// ObstacleDetector is consulted before every move with the cell the rover is
// about to enter.
type ObstacleDetector interface {
	DetectObstacle(c Coordinates) bool
}

// DetectorFunc adapts a plain function to ObstacleDetector.
type DetectorFunc func(c Coordinates) bool

// DetectObstacle calls f(c).
func (f DetectorFunc) DetectObstacle(c Coordinates) bool {
	return f(c)
}

// NoObstacles reports every cell as free.
type NoObstacles struct{}

// DetectObstacle always returns false.
func (NoObstacles) DetectObstacle(Coordinates) bool {
	return false
}
