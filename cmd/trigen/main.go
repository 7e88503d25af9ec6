// Command trigen writes Combine methods for varying structs.
//
// Typical use is a go:generate directive next to the type:
//
//	//go:generate trigen -type=Varyings
//
// The generated method interpolates every field: float32 and float64
// values, mgl32 vectors, arrays and nested structs of those, and any field
// type that already has its own Combine method.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/gogpu/tri/internal/gen"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: trigen -type T[,T...] [flags] [package]\n")
	flag.PrintDefaults()
}

func main() {
	var (
		typeNames = flag.String("type", "", "comma-separated list of type names; required")
		output    = flag.String("output", "", "output file name; default <dir>/<type>_combine.go")
	)
	log.SetFlags(0)
	log.SetPrefix("trigen: ")
	flag.Usage = usage
	flag.Parse()

	if *typeNames == "" {
		flag.Usage()
		os.Exit(2)
	}
	types := strings.Split(*typeNames, ",")

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pkg, err := loadPackage(patterns)
	if err != nil {
		log.Fatal(err)
	}

	args := "trigen " + strings.Join(os.Args[1:], " ")
	src, err := gen.Generate(pkg.Types, types, args)
	if err != nil {
		log.Fatal(err)
	}

	name := *output
	if name == "" {
		dir := "."
		if len(pkg.GoFiles) > 0 {
			dir = filepath.Dir(pkg.GoFiles[0])
		}
		name = filepath.Join(dir, strings.ToLower(types[0])+"_combine.go")
	}
	if err := os.WriteFile(name, src, 0o644); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}

// loadPackage loads exactly one type-checked package.
func loadPackage(patterns []string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages matching %s", len(pkgs), strings.Join(patterns, " "))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		for _, e := range pkg.Errors {
			log.Print(e)
		}
		return nil, fmt.Errorf("package %s has errors", pkg.PkgPath)
	}
	return pkg, nil
}
