package core

import "fmt"

// EntryFileContent is the launcher written next to each bundle. It
// imports the bundle's main export and invokes it only when defined, so
// modules without an entry function still get a stable
// <base>.entry.mjs the page layer can reference.
func EntryFileContent(base string) string {
	return fmt.Sprintf("import { main } from \"./%s\";\n\nmain?.();\n", BundleName(base))
}
