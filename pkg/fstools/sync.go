package fstools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/computerscienceiscool/scriptkit/pkg/sandbox"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// toText coerces data to the text that will be written. nil becomes "".
func toText(data any) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// WriteFile creates missing parent directories and writes data as the full
// content of filePath.
func WriteFile(filePath string, data any) error {
	if err := sandbox.ValidateExtension(filePath); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), dirPerm); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(toText(data)), filePerm)
}

// ReadFile returns the full text content of filePath.
func ReadFile(filePath string) (string, error) {
	if err := sandbox.ValidateExtension(filePath); err != nil {
		return "", err
	}
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReplaceFileContent truncates filePath and then writes data into it.
func ReplaceFileContent(filePath string, data any) error {
	if err := sandbox.ValidateExtension(filePath); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), dirPerm); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, nil, filePerm); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(toText(data)), filePerm)
}

// ClearFile truncates filePath to zero length. A missing file is created,
// a missing parent directory is an error.
func ClearFile(filePath string) error {
	if err := sandbox.ValidateExtension(filePath); err != nil {
		return err
	}
	return os.WriteFile(filePath, nil, filePerm)
}

// StripNoise removes every ASCII digit from text and lowercases the rest.
func StripNoise(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, text)
	return strings.ToLower(cleaned)
}

// RemoveNoise rewrites filePath with StripNoise applied to its content.
func RemoveNoise(filePath string) error {
	if err := sandbox.ValidateExtension(filePath); err != nil {
		return err
	}
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(StripNoise(string(content))), filePerm)
}

// CopyFile copies srcPath to destPath, overwriting destPath if it exists.
// Both extensions are validated before anything is opened.
func CopyFile(srcPath, destPath string) error {
	if err := sandbox.ValidateExtension(srcPath); err != nil {
		return err
	}
	if err := sandbox.ValidateExtension(destPath); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(destPath), dirPerm); err != nil {
		return err
	}
	return copyBytes(srcPath, destPath)
}

func copyBytes(srcPath, destPath string) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(dst, src)
	return err
}

// CreateFolder creates dirPath and any missing parents. It is a no-op when
// the directory already exists.
func CreateFolder(dirPath string) error {
	return os.MkdirAll(dirPath, dirPerm)
}

// DeleteFolder removes dirPath and everything below it. A missing path is
// not an error.
func DeleteFolder(dirPath string) error {
	return os.RemoveAll(dirPath)
}
