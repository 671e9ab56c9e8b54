// Package fsutil provides small filesystem helpers shared across packages.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// WriteFileAtomic writes data to filename via a temp file in the same
// directory followed by a rename, so an interrupted write never leaves a
// truncated file behind.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilTempFileFmt, filename, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-ops once the rename has succeeded.
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf(messages.FsutilTempFileFmt, filename, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf(messages.FsutilTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilTempFileFmt, filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameFmt, filename, err)
	}
	return nil
}

// CopyFile copies src to dst, preserving the source permissions.
func CopyFile(src string, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	return WriteFileAtomic(dst, data, info.Mode().Perm())
}
