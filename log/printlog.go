package log

import (
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// SetLogFile directs log output to a rotating log file. rotateHours
// is the rotation interval and maxAgeDays how long rotated files are
// kept; zero values keep the defaults of one day and one week.
func SetLogFile(logFile string, rotateHours, maxAgeDays uint64) {
	if logFile == "" {
		return
	}
	if rotateHours == 0 {
		rotateHours = 24
	}
	if maxAgeDays == 0 {
		maxAgeDays = 7
	}
	writer, err := rotatelogs.New(
		logFile+".%Y%m%d%H",
		rotatelogs.WithLinkName(logFile),
		rotatelogs.WithRotationTime(time.Duration(rotateHours)*time.Hour),
		rotatelogs.WithMaxAge(time.Duration(maxAgeDays)*24*time.Hour),
	)
	if err != nil {
		logrus.Fatalf("SetLogFile error: %v", err)
	}
	logrus.SetOutput(writer)
}
