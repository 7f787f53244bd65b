package version

import (
	"fmt"
	"strings"
	"sync"
)

// validBuildCharacters lists the characters allowed in appBuild
const validBuildCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild can be set at link time with
// '-ldflags "-X github.com/kaspanet/utxosettle/version.appBuild=foo"'.
// A value containing characters outside validBuildCharacters is ignored.
var appBuild string

var (
	version     string
	versionOnce sync.Once
)

// Version returns the application version as a properly formed string
func Version() string {
	versionOnce.Do(func() {
		version = formatVersion(appMajor, appMinor, appPatch, appBuild)
	})
	return version
}

func formatVersion(major, minor, patch uint, build string) string {
	formatted := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if isValidBuild(build) {
		formatted = fmt.Sprintf("%s-%s", formatted, build)
	}
	return formatted
}

func isValidBuild(build string) bool {
	if build == "" {
		return false
	}
	for _, r := range build {
		if !strings.ContainsRune(validBuildCharacters, r) {
			return false
		}
	}
	return true
}
