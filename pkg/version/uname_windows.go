//go:build windows

package version

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"unsafe"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/windows"
)

var (
	procGetNativeSystemInfo = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetNativeSystemInfo")
)

// nativeSystemInfo has the SYSTEM_INFO layout, only the architecture is read.
type nativeSystemInfo struct {
	arch uint16
	_    uint16
	_    uint32
	_    uintptr
	_    uintptr
	_    uintptr
	_    uint32
	_    uint32
	_    uint32
	_    uint16
	_    uint16
}

func machineName(arch uint16) string {
	switch arch {
	case 9:
		return "x64"
	case 12:
		return "arm64"
	case 0:
		return "x86"
	}
	return runtime.GOARCH
}

func hostInfo() (*SystemInfo, error) {
	var native nativeSystemInfo
	_, _, _ = procGetNativeSystemInfo.Call(uintptr(unsafe.Pointer(&native)))
	major, minor, build := windows.RtlGetNtVersionNumbers()
	// the top bits of the build number flag checked builds
	build &^= 0xF0000000
	node, _ := os.Hostname()
	return &SystemInfo{
		Name:      "WindowsNT",
		Node:      node,
		Release:   strconv.FormatUint(uint64(major), 10),
		Version:   fmt.Sprintf("%d.%d.%d", major, minor, build),
		Machine:   machineName(native.arch),
		OS:        runtime.GOOS,
		Processor: cpuid.CPU.BrandName,
	}, nil
}
