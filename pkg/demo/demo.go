// Package demo materializes a sorted user list into two text files using the
// sorter and the asynchronous file operations.
package demo

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/computerscienceiscool/scriptkit/pkg/fstools"
	"github.com/computerscienceiscool/scriptkit/pkg/sorter"
)

const (
	NamesFile  = "names.txt"
	EmailsFile = "emails.txt"
)

// User is a mock user record.
type User struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// DefaultUsers returns the built-in mock users.
func DefaultUsers() []User {
	return []User{
		{Name: "Leanne Graham", Email: "leanne@example.com"},
		{Name: "Ervin Howell", Email: "ervin@example.com"},
		{Name: "Clementine Bauch", Email: "clementine@example.com"},
		{Name: "Patricia Lebsack", Email: "patricia@example.com"},
		{Name: "Chelsey Dietrich", Email: "chelsey@example.com"},
	}
}

// SortUsers orders users by name with the sorter. Users sharing a name
// resolve to the first record carrying it.
func SortUsers(users []User) []User {
	names := make([]string, len(users))
	byName := make(map[string]User, len(users))
	for i, u := range users {
		names[i] = u.Name
		if _, ok := byName[u.Name]; !ok {
			byName[u.Name] = u
		}
	}

	sorted := make([]User, 0, len(users))
	for _, name := range sorter.SortStringsIgnoringSpaces(names) {
		sorted = append(sorted, byName[name])
	}
	return sorted
}

// Result lists the files written by PrepareUsers.
type Result struct {
	NamesPath  string `json:"names_path" yaml:"names_path"`
	EmailsPath string `json:"emails_path" yaml:"emails_path"`
	Users      []User `json:"users" yaml:"users"`
}

// PrepareUsers sorts users, creates dir and writes names.txt and emails.txt
// into it. Both writes run concurrently; the first failure is returned after
// both have settled.
func PrepareUsers(ctx context.Context, dir string, users []User) (*Result, error) {
	sorted := SortUsers(users)

	names := make([]string, len(sorted))
	emails := make([]string, len(sorted))
	for i, u := range sorted {
		names[i] = u.Name
		emails[i] = u.Email
	}

	if err := fstools.CreateFolderAsync(ctx, dir).Err(); err != nil {
		return nil, err
	}

	res := &Result{
		NamesPath:  filepath.Join(dir, NamesFile),
		EmailsPath: filepath.Join(dir, EmailsFile),
		Users:      sorted,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fstools.WriteFileAsync(gctx, res.NamesPath, strings.Join(names, "\n")).Err()
	})
	g.Go(func() error {
		return fstools.WriteFileAsync(gctx, res.EmailsPath, strings.Join(emails, "\n")).Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
