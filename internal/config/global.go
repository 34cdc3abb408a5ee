// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride lets tests pin Dir without touching HOME, which
// os.UserHomeDir does not honour on every platform.
var configDirOverride string

// Reset clears test overrides.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride makes Dir return dir.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
