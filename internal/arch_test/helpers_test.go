// Package arch_test holds source-level checks on how holonet's internal
// packages depend on each other and on third-party libraries.
package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

const modulePath = "github.com/papapumpkin/holonet"

// sourceFile is one parsed non-test Go file.
type sourceFile struct {
	Pkg  string
	Path string
	File *ast.File
	Fset *token.FileSet
}

// rel returns the path relative to the repository root.
func (f sourceFile) rel(t *testing.T) string {
	t.Helper()
	r, err := filepath.Rel(repoRoot(t), f.Path)
	if err != nil {
		return f.Path
	}
	return r
}

// imports lists the file's import paths.
func (f sourceFile) imports() []string {
	out := make([]string, 0, len(f.File.Imports))
	for _, imp := range f.File.Imports {
		out = append(out, strings.Trim(imp.Path.Value, `"`))
	}
	return out
}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, here, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	dir := filepath.Dir(here)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("go.mod not found above " + here)
		}
		dir = parent
	}
}

// internalPackages returns the package directories under internal/ that
// hold non-test Go files, sorted. arch_test itself is skipped.
func internalPackages(t *testing.T) []string {
	t.Helper()
	dir := filepath.Join(repoRoot(t), "internal")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var pkgs []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "arch_test" {
			continue
		}
		if len(parsePackage(t, e.Name())) > 0 {
			pkgs = append(pkgs, e.Name())
		}
	}
	sort.Strings(pkgs)
	return pkgs
}

// parsePackage parses the non-test files of internal/<pkg> with comments.
func parsePackage(t *testing.T, pkg string) []sourceFile {
	t.Helper()
	dir := filepath.Join(repoRoot(t), "internal", pkg)
	return parseDir(t, pkg, dir)
}

func parseDir(t *testing.T, pkg, dir string) []sourceFile {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var files []sourceFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		path := filepath.Join(dir, name)
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		files = append(files, sourceFile{Pkg: pkg, Path: path, File: f, Fset: fset})
	}
	return files
}

// internalImports returns the internal packages imported by pkg's
// non-test files.
func internalImports(t *testing.T, pkg string) []string {
	t.Helper()
	prefix := modulePath + "/internal/"
	seen := map[string]bool{}
	for _, f := range parsePackage(t, pkg) {
		for _, path := range f.imports() {
			if rest, ok := strings.CutPrefix(path, prefix); ok {
				name, _, _ := strings.Cut(rest, "/")
				seen[name] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// selectorCalls reports every pkgName.Sel call in f, keyed by position.
func selectorCalls(f sourceFile, pkgName string) map[string]string {
	calls := map[string]string{}
	ast.Inspect(f.File, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && id.Name == pkgName {
			calls[f.Fset.Position(call.Pos()).String()] = sel.Sel.Name
		}
		return true
	})
	return calls
}

// methodCalls reports every x.name(...) call in f whose receiver is not a
// package identifier.
func methodCalls(f sourceFile, name string) map[string]string {
	imported := map[string]bool{}
	for _, imp := range f.File.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		local := path[strings.LastIndex(path, "/")+1:]
		if imp.Name != nil {
			local = imp.Name.Name
		}
		imported[local] = true
	}
	calls := map[string]string{}
	ast.Inspect(f.File, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != name {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && imported[id.Name] {
			return true
		}
		calls[f.Fset.Position(call.Pos()).String()] = name
		return true
	})
	return calls
}
