package fstools

import (
	"context"

	"github.com/computerscienceiscool/scriptkit/pkg/sandbox"
)

// guard validates every path before a goroutine is started, so a disallowed
// extension fails the task without touching the file system.
func guard(paths ...string) error {
	for _, p := range paths {
		if err := sandbox.ValidateExtension(p); err != nil {
			return err
		}
	}
	return nil
}

func void(fn func() error) func() (struct{}, error) {
	return func() (struct{}, error) {
		return struct{}{}, fn()
	}
}

// WriteFileAsync is the asynchronous form of WriteFile.
func WriteFileAsync(ctx context.Context, filePath string, data any) *Task[struct{}] {
	if err := guard(filePath); err != nil {
		return settled[struct{}](err)
	}
	return start(ctx, void(func() error { return WriteFile(filePath, data) }))
}

// ReadFileAsync is the asynchronous form of ReadFile.
func ReadFileAsync(ctx context.Context, filePath string) *Task[string] {
	if err := guard(filePath); err != nil {
		return settled[string](err)
	}
	return start(ctx, func() (string, error) { return ReadFile(filePath) })
}

// ReplaceFileContentAsync is the asynchronous form of ReplaceFileContent.
func ReplaceFileContentAsync(ctx context.Context, filePath string, data any) *Task[struct{}] {
	if err := guard(filePath); err != nil {
		return settled[struct{}](err)
	}
	return start(ctx, void(func() error { return ReplaceFileContent(filePath, data) }))
}

// ClearFileAsync is the asynchronous form of ClearFile.
func ClearFileAsync(ctx context.Context, filePath string) *Task[struct{}] {
	if err := guard(filePath); err != nil {
		return settled[struct{}](err)
	}
	return start(ctx, void(func() error { return ClearFile(filePath) }))
}

// RemoveNoiseAsync is the asynchronous form of RemoveNoise.
func RemoveNoiseAsync(ctx context.Context, filePath string) *Task[struct{}] {
	if err := guard(filePath); err != nil {
		return settled[struct{}](err)
	}
	return start(ctx, void(func() error { return RemoveNoise(filePath) }))
}

// CopyFileAsync is the asynchronous form of CopyFile.
func CopyFileAsync(ctx context.Context, srcPath, destPath string) *Task[struct{}] {
	if err := guard(srcPath, destPath); err != nil {
		return settled[struct{}](err)
	}
	return start(ctx, void(func() error { return CopyFile(srcPath, destPath) }))
}

// CreateFolderAsync is the asynchronous form of CreateFolder.
func CreateFolderAsync(ctx context.Context, dirPath string) *Task[struct{}] {
	return start(ctx, void(func() error { return CreateFolder(dirPath) }))
}

// DeleteFolderAsync is the asynchronous form of DeleteFolder.
func DeleteFolderAsync(ctx context.Context, dirPath string) *Task[struct{}] {
	return start(ctx, void(func() error { return DeleteFolder(dirPath) }))
}
