// Package config loads YCSB runner configuration files.
//
// A runner config is an INI file. Each section header declares one or more
// database systems, and the keys of the section set the benchmark options
// shared by all of them:
//
//	tablename = usertable
//
//	[mysql(local), postgres]
//	trials       = 5
//	min_mpl      = 1
//	max_mpl      = 16
//	inc_mpl      = 1
//	output       = CSV
//	workload     = workloads/workloada
//	output_plots = yes
//
// A parenthesised label lets the same database type appear more than
// once. Keys written before the first section, or under an explicit
// [DEFAULT] header, are inherited by every section.
//
// A section header or a key that appears twice is a ConfigFormatError.
// Booleans accept 1/yes/true/on and 0/no/false/off in any case.
//
// Basic Usage:
//
//	cfg, err := config.Load("runner.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, db := range cfg.DBs {
//	    fmt.Printf("%s: MPLs %v on table %s\n", db.ID(), db.MPLs(), db.TableName)
//	}
//
// Errors:
//
// A file that cannot be read or parsed fails with *ConfigFormatError. A
// missing option fails with *MissingOptionError, and a value that does not
// convert fails with *InvalidOptionTypeError. In both cases nothing is
// returned for the whole file. An unsupported database name only skips that
// entry; it is reported as an *UnsupportedDatabaseWarning through the
// warning handler and recorded in RunnerConfig.Warnings.
package config
