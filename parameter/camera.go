package parameter

// Chase camera defaults
const (
	// CameraOffsetY is the height of the camera above the board
	CameraOffsetY = 3.0

	// CameraOffsetZ is the distance behind the board along the heading (negative = behind)
	CameraOffsetZ = -6.0

	// CameraSmoothSpeed is the position lerp rate (1/s)
	CameraSmoothSpeed = 5.0

	// CameraLookHeight is the look target height above the board
	CameraLookHeight = 0.5

	// CameraHeadingMinSpeedSq is the squared horizontal speed below which board facing is used
	CameraHeadingMinSpeedSq = 0.1

	// CameraIdleSideBias skews the idle facing toward board right (matches the idle framing)
	CameraIdleSideBias = 4.0
)

// Terminal view scale
const (
	// ViewCellsPerUnitX is the number of columns per world unit
	ViewCellsPerUnitX = 4.0

	// ViewCellsPerUnitZ is the number of rows per world unit (cells are ~2:1)
	ViewCellsPerUnitZ = 2.0
)
