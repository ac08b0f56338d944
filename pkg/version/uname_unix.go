//go:build !windows

package version

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/unix"
)

func hostInfo() (*SystemInfo, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return nil, err
	}
	return &SystemInfo{
		Name:      unix.ByteSliceToString(u.Sysname[:]),
		Node:      unix.ByteSliceToString(u.Nodename[:]),
		Release:   unix.ByteSliceToString(u.Release[:]),
		Version:   unix.ByteSliceToString(u.Version[:]),
		Machine:   unix.ByteSliceToString(u.Machine[:]),
		OS:        runtime.GOOS,
		Processor: cpuid.CPU.BrandName,
	}, nil
}
