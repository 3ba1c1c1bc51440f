// Package config aggregates configuration files scattered across the
// environment subdirectories of a single source directory into merged
// mappings with layered override semantics.
//
// The loader recursively scans its configuration directories for files with
// a yaml, yml, json, ini, pickle, pkl, xml or properties extension. The
// first processed directory is the base environment inside the source
// directory; the run environment directory is processed after it and
// overrides it. When the same top-level key appears in two files of the same
// directory the retrieval fails; when it appears in files of different
// directories the last processed directory wins.
//
// For example, with a source directory laid out as:
//
//	conf
//	|-- base
//	|   |-- catalog.yml
//	|   `-- experiment1
//	|       `-- parameters.yml
//	`-- local
//	    |-- catalog.yml
//	    `-- db.ini
//
// the different configurations are accessed as:
//
//	loader, err := config.New("conf", config.WithEnv("local"))
//	if err != nil { ... }
//
//	catalog, err := loader.Get("catalog*", "catalog*/**")
//	params, err := loader.Get("**/parameters.yml")
//
// The four essential sections (catalog, parameters, credentials, logging)
// are resolved once at construction with lenient missing-file handling and
// served by name through the Get fast path.
package config
