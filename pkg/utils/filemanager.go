// =============================================================================
// XLSX to CSV Converter - File Manager Utility
// =============================================================================
//
// This module provides the file utilities used when persisting output:
//   - Atomic replacement of the destination file
//   - Temporary file naming
//   - Small stat helpers
//
// REPLACEMENT STRATEGY:
//   - Content is written to a uniquely named temporary file next to the target
//   - The temporary file is synced and renamed over the target
//   - On any failure the temporary file is removed and the target is untouched
//   - The target's directory is never created; a missing directory is an error
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic replaces the file at path with data.
// An existing file at path is overwritten without confirmation.
//
// PARAMETERS:
//   - path: The destination file path.
//   - data: The full file content.
//   - perm: The permission bits of the new file.
//
// RETURNS:
//   - An error if the directory is missing or not writable, or the rename fails.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to access output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}

	tmpPath := TempFileName(path)

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if _, err = file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// TempFileName returns a unique hidden file name in the same directory as path.
//
// EXAMPLE:
//   path:   "public/itens_converted.csv"
//   output: "public/.itens_converted.csv.a1b2c3d4-e5f6-7890-abcd-ef1234567890.tmp"
func TempFileName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.New().String()))
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// SamePath reports whether a and b refer to the same file path once cleaned
// and made absolute.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
