package vortex

import (
	"runtime/debug"
	"sync"
)

const (
	// SDKName identifies this client to the Vortex API.
	SDKName = "vortex-go-sdk"

	// Version is reported when the module version cannot be read from build info,
	// e.g. when running the module's own tests.
	Version = "0.4.0"

	modulePath = "github.com/dmitrymomot/vortex"
)

// SDKVersion returns the version of this module as recorded by the Go
// toolchain in the importing binary, falling back to Version.
var SDKVersion = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if info.Main.Path == modulePath && isRelease(info.Main.Version) {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil && isRelease(dep.Replace.Version) {
			return dep.Replace.Version
		}
		if isRelease(dep.Version) {
			return dep.Version
		}
	}
	return Version
})

func isRelease(v string) bool {
	return v != "" && v != "(devel)"
}
