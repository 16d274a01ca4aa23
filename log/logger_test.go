package log

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	now = time.Now().Unix()
	err = fmt.Errorf("error message")
)

// Fatal and Fatalf are not tested (they exit the process)
func TestLogger(t *testing.T) {
	SetLogger(6, false, true)

	WithFields("timestamp", now, "err", err).Tracef("test WithFields Tracef at %v", now)
	WithFields("timestamp", now, "err", err).Infof("test WithFields Infof at %v", now)
	assert.Panics(t, func() { WithFields("timestamp", now, "err", err).Panicf("test WithFields Panicf at %v", now) }, "not panic")

	Trace("test Trace", "timestamp", now, "err", err)
	Tracef("test Tracef, timestamp=%v err=%v", now, err)

	Debug("test Debug", "timestamp", now, "err", err)
	Debugf("test Debugf, timestamp=%v err=%v", now, err)

	Info("test Info", "timestamp", now, "err", err)
	Infof("test Infof, timestamp=%v err=%v", now, err)

	Print("test Print ", "timestamp", now, " err ", err)
	Printf("test Printf, timestamp=%v err=%v", now, err)
	Println("test Println", "timestamp", now, "err", err)

	Warn("test Warn", "timestamp", now, "err", err)
	Warnf("test Warnf, timestamp=%v err=%v", now, err)

	Error("test Error", "timestamp", now, "err", err)
	Errorf("test Errorf, timestamp=%v err=%v", now, err)

	assert.Panics(t, func() { Panic("test Panic", "timestamp", now, "err", err) }, "not panic")
	assert.Panics(t, func() { Panicf("test Panicf, timestamp=%v err=%v", now, err) }, "not panic")

	SetLogger(6, true, false)
	assert.True(t, JSONFormat)
	Info("test json Info", "timestamp", now, "err", err)
}
