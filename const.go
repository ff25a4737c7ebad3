package fbshot

// TXT 4.0 display geometry. The panel is portrait and never changes at runtime.
const (
	DisplayWidth  = 240
	DisplayHeight = 320
)

// DefaultDevice is the framebuffer device exposing the display contents.
const DefaultDevice = "/dev/fb0"

const (
	bytesPerPixel565 = 2
	bytesPerPixel888 = 3
)

const colorMax = 255

const (
	defaultBaseName = "screenshot"
	outputExt       = ".png"
	dateLayout      = "2006-01-02-15-04-05"
)
