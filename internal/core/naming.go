package core

import (
	"path/filepath"
	"strings"
)

const (
	// SourceExt is the extension of Gleam source files.
	SourceExt = ".gleam"

	// ModuleExt is the extension of compiled JavaScript modules.
	ModuleExt = ".mjs"

	// RuntimeFile is the runtime-support module the compiler always
	// emits. It is a dependency of every compiled module, not an entry
	// point, so the pipeline never bundles it on its own.
	RuntimeFile = "gleam.mjs"

	// ManifestFile is the project descriptor the Gleam compiler
	// requires in its working directory.
	ManifestFile = "gleam.toml"

	// SourceDir and TestDir are the trees the compiler expects next to
	// the manifest.
	SourceDir = "src"
	TestDir   = "test"

	// BuildRootDir is where the pipeline stages a project when the
	// caller does not keep gleam.toml at the working-directory root.
	BuildRootDir = ".lightswitch"

	// AssetPrefix is the URL path segment bundles are served under.
	AssetPrefix = "gleam"
)

// OutputDir is the conventional bundle directory under the
// application's static-assets root.
func OutputDir() string {
	return filepath.Join("static", AssetPrefix)
}

// CompiledOutputDir is where the compiler leaves JavaScript modules for
// the given application, relative to the project directory it ran in.
func CompiledOutputDir(projectDir, appName string) string {
	return filepath.Join(projectDir, "build", "dev", "javascript", appName)
}

// IsCompiledModule reports whether a compiler output file is an entry
// module worth bundling.
func IsCompiledModule(name string) bool {
	return strings.HasSuffix(name, ModuleExt) && name != RuntimeFile
}

// ModuleBase strips the directory and extension from a compiled-module
// path: "build/.../counter.mjs" -> "counter".
func ModuleBase(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ModuleExt)
}

// BundleName is the bundled output filename for a module base name.
func BundleName(base string) string {
	return base + ModuleExt
}

// EntryName is the synthesized launcher filename for a module base
// name. Pages reference this name whether or not the module exports an
// entry function.
func EntryName(base string) string {
	return base + ".entry" + ModuleExt
}

// EntryScriptSrc is the URL a page uses to load a module's launcher.
func EntryScriptSrc(moduleName string) string {
	return AssetPrefix + "/" + EntryName(moduleName)
}
