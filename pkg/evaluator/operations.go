package evaluator

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/computerscienceiscool/scriptkit/internal/errors"
	"github.com/computerscienceiscool/scriptkit/pkg/demo"
	"github.com/computerscienceiscool/scriptkit/pkg/fstools"
	"github.com/computerscienceiscool/scriptkit/pkg/sorter"
)

// operation describes how one command type is validated, run and audited.
type operation struct {
	minArgs int
	maxArgs int // -1 means unbounded
	usage   string
	// audited is how many leading arguments go into the audit record.
	// Payload arguments such as file content are left out.
	audited int
	run     func(ctx context.Context, args []string, async bool) (any, error)
}

var operations = map[string]operation{
	"write":   {minArgs: 2, maxArgs: 2, usage: "write <path> <data>", audited: 1, run: runWrite},
	"read":    {minArgs: 1, maxArgs: 1, usage: "read <path>", audited: 1, run: runRead},
	"replace": {minArgs: 2, maxArgs: 2, usage: "replace <path> <data>", audited: 1, run: runReplace},
	"clear":   {minArgs: 1, maxArgs: 1, usage: "clear <path>", audited: 1, run: runClear},
	"denoise": {minArgs: 1, maxArgs: 1, usage: "denoise <path>", audited: 1, run: runDenoise},
	"copy":    {minArgs: 2, maxArgs: 2, usage: "copy <src> <dst>", audited: 2, run: runCopy},
	"mkdir":   {minArgs: 1, maxArgs: 1, usage: "mkdir <path>", audited: 1, run: runMkdir},
	"rmdir":   {minArgs: 1, maxArgs: 1, usage: "rmdir <path>", audited: 1, run: runRmdir},
	"list":    {minArgs: 0, maxArgs: 2, usage: "list [root] [pattern]", audited: 2, run: runList},
	"purge":   {minArgs: 0, maxArgs: 1, usage: "purge [root]", audited: 1, run: runPurge},
	"sort":    {minArgs: 0, maxArgs: -1, usage: "sort [items...]", audited: 0, run: runSort},
	"demo":    {minArgs: 0, maxArgs: 1, usage: "demo [dir]", audited: 1, run: runDemo},
}

func (op operation) check(cmd Command) error {
	n := len(cmd.Args)
	if n < op.minArgs || (op.maxArgs >= 0 && n > op.maxArgs) {
		return &errors.ValidationError{
			Field: "args",
			Value: n,
			Err:   fmt.Errorf("%w: usage: %s", errors.ErrInvalidArgument, op.usage),
		}
	}
	return nil
}

func (op operation) auditArg(args []string) string {
	if op.audited == 0 {
		return fmt.Sprintf("%d items", len(args))
	}
	return strings.Join(args[:min(op.audited, len(args))], " ")
}

func argOr(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

// wait runs a void operation through either family.
func wait(ctx context.Context, async bool, sync func() error, task func(context.Context) *fstools.Task[struct{}]) (any, error) {
	if async {
		return nil, task(ctx).Err()
	}
	return nil, sync()
}

func runWrite(ctx context.Context, args []string, async bool) (any, error) {
	return wait(ctx, async,
		func() error { return fstools.WriteFile(args[0], args[1]) },
		func(ctx context.Context) *fstools.Task[struct{}] { return fstools.WriteFileAsync(ctx, args[0], args[1]) })
}

func runRead(ctx context.Context, args []string, async bool) (any, error) {
	var (
		content string
		err     error
	)
	if async {
		content, err = fstools.ReadFileAsync(ctx, args[0]).Wait()
	} else {
		content, err = fstools.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}

func runReplace(ctx context.Context, args []string, async bool) (any, error) {
	return wait(ctx, async,
		func() error { return fstools.ReplaceFileContent(args[0], args[1]) },
		func(ctx context.Context) *fstools.Task[struct{}] {
			return fstools.ReplaceFileContentAsync(ctx, args[0], args[1])
		})
}

func runClear(ctx context.Context, args []string, async bool) (any, error) {
	return wait(ctx, async,
		func() error { return fstools.ClearFile(args[0]) },
		func(ctx context.Context) *fstools.Task[struct{}] { return fstools.ClearFileAsync(ctx, args[0]) })
}

func runDenoise(ctx context.Context, args []string, async bool) (any, error) {
	return wait(ctx, async,
		func() error { return fstools.RemoveNoise(args[0]) },
		func(ctx context.Context) *fstools.Task[struct{}] { return fstools.RemoveNoiseAsync(ctx, args[0]) })
}

func runCopy(ctx context.Context, args []string, async bool) (any, error) {
	return wait(ctx, async,
		func() error { return fstools.CopyFile(args[0], args[1]) },
		func(ctx context.Context) *fstools.Task[struct{}] { return fstools.CopyFileAsync(ctx, args[0], args[1]) })
}

func runMkdir(ctx context.Context, args []string, async bool) (any, error) {
	return wait(ctx, async,
		func() error { return fstools.CreateFolder(args[0]) },
		func(ctx context.Context) *fstools.Task[struct{}] { return fstools.CreateFolderAsync(ctx, args[0]) })
}

func runRmdir(ctx context.Context, args []string, async bool) (any, error) {
	return wait(ctx, async,
		func() error { return fstools.DeleteFolder(args[0]) },
		func(ctx context.Context) *fstools.Task[struct{}] { return fstools.DeleteFolderAsync(ctx, args[0]) })
}

func runList(ctx context.Context, args []string, async bool) (any, error) {
	root := argOr(args, 0, "")
	pattern := argOr(args, 1, "")

	var (
		files []string
		err   error
	)
	if async {
		files, err = fstools.ListProjectFilesAsync(ctx, root).Wait()
		if err == nil {
			slices.Sort(files)
		}
	} else {
		files, err = fstools.ListProjectFiles(root)
	}
	if err != nil {
		return nil, err
	}
	return fstools.MatchFiles(root, files, pattern)
}

func runPurge(ctx context.Context, args []string, async bool) (any, error) {
	root := argOr(args, 0, "")
	return wait(ctx, async,
		func() error { return fstools.PurgeProject(root) },
		func(ctx context.Context) *fstools.Task[struct{}] { return fstools.PurgeProjectAsync(ctx, root) })
}

func runSort(_ context.Context, args []string, _ bool) (any, error) {
	return sorter.SortStringsIgnoringSpaces(args), nil
}

func runDemo(ctx context.Context, args []string, _ bool) (any, error) {
	return demo.PrepareUsers(ctx, argOr(args, 0, "users"), demo.DefaultUsers())
}
