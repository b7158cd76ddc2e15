//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/darianmavgo/internseed/config"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the project binaries into the bin/ directory.
func Build() error {
	fmt.Println("Building...")
	return sh.Run("go", "build", "-o", "./bin/", "./cmd/...")
}

// Test runs all tests in the project with verbose output.
func Test() error {
	fmt.Println("Running Tests...")
	return sh.Run("go", "test", "-v", "./...")
}

// Generate writes the INSERT script from the listings workbook.
func Generate() error {
	mg.Deps(Build)
	fmt.Println("Generating SQL...")
	return sh.RunV("./bin/gensql")
}

// Dump prints the listings workbook rows to stdout.
func Dump() error {
	mg.Deps(Build)
	return sh.RunV("./bin/dumprows")
}

// Config writes a default internseed.hcl unless one already exists.
func Config() error {
	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Printf("%s already exists\n", config.FileName)
		return nil
	}
	fmt.Printf("Writing %s...\n", config.FileName)
	return config.Export(config.FileName, config.DefaultConfig())
}

// Clean removes the bin directory and generated SQL.
func Clean() error {
	fmt.Println("Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	if err := os.Remove(config.DefaultConfig().OutputPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Running go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Check runs formatting and linting checks (fmt, vet).
func Check() error {
	mg.Deps(Fmt, Vet)
	return nil
}

// Fmt runs go fmt ./...
func Fmt() error {
	fmt.Println("Running go fmt...")
	return sh.Run("go", "fmt", "./...")
}

// Vet runs go vet ./...
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}
