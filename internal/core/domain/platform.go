package domain

// Platform identifies the operating system the generated commands target.
type Platform string

// Supported platforms.
const (
	PlatformLinux   Platform = "linux"
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
)

// PlatformFor maps a GOOS value to a Platform. Unknown Unix-likes behave like Linux.
func PlatformFor(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformDarwin
	default:
		return PlatformLinux
	}
}

// IsWindows reports whether p uses Windows command syntax.
func (p Platform) IsWindows() bool {
	return p == PlatformWindows
}
