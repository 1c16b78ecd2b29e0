//go:build linux

package cpu

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wippyai/jit-dispatch/features"
)

const cpuinfoPath = "/proc/cpuinfo"

// detectHost probes /proc/cpuinfo on riscv64 Linux. Any other machine
// type, and any probe failure, degrades to the generic profile.
func detectHost() (ID, features.Set) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		Logger().Debug("uname failed", zap.Error(err))
		return Generic, features.Set{}
	}
	if unix.ByteSliceToString(uts.Machine[:]) != "riscv64" {
		return Generic, features.Set{}
	}

	f, err := os.Open(cpuinfoPath)
	if err != nil {
		Logger().Debug("cpuinfo unavailable", zap.Error(err))
		return Generic, features.Set{}
	}
	defer f.Close()

	return detectFrom(f)
}
