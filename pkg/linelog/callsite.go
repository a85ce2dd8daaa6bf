package linelog

import (
	"runtime"
	"strings"

	"github.com/wayneeseguin/linelog/pkg/formatters"
)

// Caller returns formatters.Default() filled in with the file, line and
// package import path of a calling function. Caller(0) describes the
// function that called Caller, Caller(1) its caller, and so on.
//
// Go does not expose column numbers at run time, so the column stays unset
// and renders empty. When the stack is not deep enough the template comes
// back without call-site fields.
func Caller(skip int) formatters.Template {
	tmpl := formatters.Default()

	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return tmpl
	}

	tmpl = tmpl.WithFile(file).WithLine(line)
	if fn := runtime.FuncForPC(pc); fn != nil {
		tmpl = tmpl.WithModulePath(packagePath(fn.Name()))
	}
	return tmpl
}

// packagePath strips the function part from a runtime function name:
//
//	github.com/org/repo/pkg.(*T).Method.func1 -> github.com/org/repo/pkg
//
// The runtime escapes dots in the last path element as %2e.
func packagePath(funcName string) string {
	lastSlash := strings.LastIndexByte(funcName, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}
	path := funcName
	if dot := strings.IndexByte(funcName[lastSlash:], '.'); dot >= 0 {
		path = funcName[:lastSlash+dot]
	}
	return strings.ReplaceAll(path, "%2e", ".")
}
