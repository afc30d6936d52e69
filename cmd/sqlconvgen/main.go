/*
Sqlconvgen emits database/sql adapter methods for custom column types. For
every type named in its manifest, it writes a Value method (driver.Valuer)
and a Scan method (sql.Scanner) that delegate to a package-level
sqlconv.Converter variable declared by the user. It is intended to be run
with go generate from the package the types live in:

	//go:generate sqlconvgen -c sqlconv.yml

Usage:

	sqlconvgen [flags]

The manifest is a YAML file naming the package, the output file, and the
types:

	package: mypkg
	output: types_sqlconv.go
	types:
	  - name: Role
	    converter: RoleConverter

The flags are:

	-c, --conf PATH
		Use the given file for the manifest instead of './sqlconv.yml'.
	-o, --output PATH
		Write to the given file instead of the one named in the manifest.
	-f, --force
		Overwrite the output file if it already exists.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/jellog"
	"github.com/dekarrin/sqlconv/internal/gen"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = 0
	exitError   = 1
	exitPanic   = 2
)

var exitCode int

var (
	flagConf   = pflag.StringP("conf", "c", "sqlconv.yml", "Path to manifest file")
	flagOutput = pflag.StringP("output", "o", "", "Override the output file named in the manifest")
	flagForce  = pflag.BoolP("force", "f", false, "Overwrite the output file if it exists")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "fatal panic: %v\n", panicErr)
			exitCode = exitPanic
		}
		os.Exit(exitCode)
	}()

	pflag.Parse()

	stdErrOutput := jellog.NewStderrHandler(nil)
	logger := jellog.New(jellog.Defaults[string]().
		WithComponent("sqlconvgen"))
	logger.AddHandler(jellog.LvTrace, stdErrOutput)

	logger.Debugf("Loading manifest %s...", *flagConf)
	manifest, err := gen.Load(*flagConf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	if *flagOutput != "" {
		manifest.Output = *flagOutput
	}

	if !*flagForce {
		if _, err := os.Stat(manifest.Output); err == nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s already exists; use --force to overwrite\n", manifest.Output)
			exitCode = exitError
			return
		}
	}

	src, err := gen.Generate(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	if err := os.WriteFile(manifest.Output, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	logger.Infof("Wrote adapters for %d type(s) to %s", len(manifest.Types), manifest.Output)
}
