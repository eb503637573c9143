package validator

import (
	"fmt"
	"strings"
)

const (
	defaultMaxFileSize  int64 = 10 << 20
	defaultMaxImageSize int64 = 5 << 20
)

var imageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

// FileInfo describes a picked file as reported by the client.
type FileInfo struct {
	Name     string
	Size     int64
	MIMEType string
}

// FileOptions constrains ValidateFile. Zero MaxSize means 10 MB; empty AllowedTypes allows any type.
type FileOptions struct {
	MaxSize      int64
	AllowedTypes []string
}

func fileFrom(value any) (FileInfo, bool) {
	switch v := value.(type) {
	case FileInfo:
		return v, v.Name != "" || v.Size > 0
	case *FileInfo:
		if v == nil {
			return FileInfo{}, false
		}
		return *v, v.Name != "" || v.Size > 0
	default:
		return FileInfo{}, false
	}
}

func ValidateFile(value any, opts FileOptions) Result {
	file, ok := fileFrom(value)
	if !ok {
		return Fail("Please select a file")
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}
	if file.Size > maxSize {
		return Fail(fmt.Sprintf("File size cannot exceed %s", formatBytes(maxSize)))
	}

	if len(opts.AllowedTypes) > 0 {
		return Check(ValidMIMEType("File", file.MIMEType, opts.AllowedTypes))
	}
	return OK()
}

// File binds ValidateFile to opts.
func File(opts FileOptions) FieldValidator {
	return func(value any) Result {
		return ValidateFile(value, opts)
	}
}

// ValidateImage accepts JPEG, PNG, GIF and WebP images up to 5 MB.
func ValidateImage(value any) Result {
	res := ValidateFile(value, FileOptions{MaxSize: defaultMaxImageSize, AllowedTypes: imageTypes})
	if !res.Valid && strings.HasPrefix(res.Error, "File type") {
		return Fail("Please select a JPEG, PNG, GIF or WebP image")
	}
	return res
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%d MB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%d KB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
