package config

import (
	"regexp"
	"slices"
	"strings"
)

// DefaultTableName is the YCSB table used when a config does not set one.
const DefaultTableName = "usertable"

// labelPattern matches a parenthesised label at the end of a database
// declaration, e.g. the "(run1)" in "mysql(run1)".
var labelPattern = regexp.MustCompile(`\(([^()]*)\)\s*$`)

// Registry describes the database systems the runner can benchmark.
type Registry struct {
	// Supported holds the lowercase canonical database names
	Supported []string

	// DefaultTableName is used when no tablename key is present
	DefaultTableName string
}

// DefaultRegistry returns the built-in registry. Each call returns a new value.
func DefaultRegistry() Registry {
	return Registry{
		Supported:        []string{"mysql", "postgres", "mongodb", "cassandra", "redis", "voltdb"},
		DefaultTableName: DefaultTableName,
	}
}

// IsSupported reports whether name is a supported database, ignoring case.
func (r Registry) IsSupported(name string) bool {
	return slices.Contains(r.Supported, strings.ToLower(name))
}

// DBSystem is one database to benchmark together with the options of the
// section that declared it.
type DBSystem struct {
	// Name is the database name as written in the section header, without label
	Name string

	// Label distinguishes several configurations of the same database type
	Label string

	// Options are the section options, shared with the other entries of the section
	Options Options

	// TableName is the benchmark table
	TableName string
}

// DBSystemFactory builds a DBSystem for one valid database declaration.
type DBSystemFactory func(name string, opts Options, label, tableName string) DBSystem

// NewDBSystem is the default DBSystemFactory.
func NewDBSystem(name string, opts Options, label, tableName string) DBSystem {
	return DBSystem{
		Name:      name,
		Label:     label,
		Options:   opts,
		TableName: tableName,
	}
}

// Type returns the canonical lowercase database name.
func (d DBSystem) Type() string {
	return strings.ToLower(d.Name)
}

// ID returns the declaration as it identifies this system in a config file:
// the name alone, or name(label) when labelled.
func (d DBSystem) ID() string {
	if d.Label == "" {
		return d.Name
	}
	return d.Name + "(" + d.Label + ")"
}

// MPLs returns the concurrency sweep for this system.
func (d DBSystem) MPLs() []int {
	return d.Options.MPLs()
}

// ParseDeclaration splits a single database declaration from a section
// header into its bare name and optional label.
//
//	ParseDeclaration("mysql(run1)") // "mysql", "run1"
//	ParseDeclaration("postgres")    // "postgres", ""
func ParseDeclaration(token string) (name, label string) {
	token = strings.TrimSpace(token)
	m := labelPattern.FindStringSubmatchIndex(token)
	if m == nil {
		return token, ""
	}
	return strings.TrimSpace(token[:m[0]]), strings.TrimSpace(token[m[2]:m[3]])
}

// splitHeader splits a section header into its comma-separated declarations.
func splitHeader(header string) []string {
	parts := strings.Split(header, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
