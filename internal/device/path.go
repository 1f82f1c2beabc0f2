package device

import (
	"path/filepath"
	"strings"
)

// DevicePath builds the on-device colon path for a file placed in
// folderName with the given destination filename, e.g.
// ":iPod_Control:Music:F00:ABCD.mp3".
func DevicePath(folderName, filename string) string {
	return ":iPod_Control:Music:" + folderName + ":" + filename
}

// ResolvePath turns an on-device colon path back into a filesystem path
// rooted at mountRoot: the leading colon is stripped and every remaining
// colon becomes the OS path separator.
func ResolvePath(mountRoot, devicePath string) string {
	trimmed := strings.TrimPrefix(devicePath, ":")
	parts := strings.Split(trimmed, ":")
	return filepath.Join(append([]string{mountRoot}, parts...)...)
}

// supportedExtensions maps a lowercase file extension to the name of the
// device file type it is stored as (the on-disk tag itself comes from
// fileTypeFor). mp4 maps to m4a, matching the device's handling of plain
// .mp4 audio containers.
var supportedExtensions = map[string]string{
	".mp3": "mp3",
	".m4a": "m4a",
	".m4p": "m4p",
	".aac": "aac",
	".mp4": "m4a",
}

// IsSupportedExtension reports whether ext (including the leading dot,
// any case) is a format the sync path can place on the device.
func IsSupportedExtension(ext string) bool {
	_, ok := supportedExtensions[strings.ToLower(ext)]
	return ok
}
