package sandbox

// serviceNames are excluded from project listing and purge. Matching is by
// exact entry name, never by path or pattern.
var serviceNames = map[string]struct{}{
	"node_modules":      {},
	".git":              {},
	".github":           {},
	".gitignore":        {},
	".env":              {},
	"package.json":      {},
	"package-lock.json": {},
}

// IsServiceName reports whether name is on the service-name denylist.
func IsServiceName(name string) bool {
	_, ok := serviceNames[name]
	return ok
}

// ServiceNames returns the denylisted names in no particular order.
func ServiceNames() []string {
	names := make([]string, 0, len(serviceNames))
	for name := range serviceNames {
		names = append(names, name)
	}
	return names
}
