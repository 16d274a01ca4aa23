package common

import (
	"os"
	"strconv"
	"time"
)

// NowMilli returns the number of milliseconds elapsed since the Unix
// epoch according to the process clock.
func NowMilli() int64 {
	return time.Now().UnixNano() / 1e6
}

// NowMilliStr returns NowMilli as a decimal string.
func NowMilliStr() string {
	return strconv.FormatInt(NowMilli(), 10)
}

// Now returns the current Unix time in seconds.
func Now() int64 {
	return time.Now().Unix()
}

// FileExist checks if a file exists at filePath.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
