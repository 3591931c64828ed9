//go:build darwin

package account

import "golang.org/x/sys/unix"

// Time Machine skips files carrying this attribute. The value is the binary
// plist encoding of the string "com.apple.backupd", as written by
// `tmutil addexclusion`.
const backupExcludeAttr = "com.apple.metadata:com_apple_backup_excludeItem"

var backupExcludeValue = []byte("bplist00_\x10\x11com.apple.backupd\x08" +
	"\x00\x00\x00\x00\x00\x00\x01\x01" +
	"\x00\x00\x00\x00\x00\x00\x00\x01" +
	"\x00\x00\x00\x00\x00\x00\x00\x00" +
	"\x00\x00\x00\x00\x00\x00\x00\x1c")

func excludeFromBackup(path string) error {
	return unix.Setxattr(path, backupExcludeAttr, backupExcludeValue, 0)
}
