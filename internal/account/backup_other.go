//go:build !darwin

package account

func excludeFromBackup(string) error { return nil }
