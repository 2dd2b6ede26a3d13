package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ModelElementID is the id of the JSON script element the client entry
// reads its initial payload from: flags for client-only renders, the
// computed model for server-side renders.
const ModelElementID = "ls-model"

// IgnoreAttr marks the container so external DOM patching leaves the
// component's subtree alone once the client has taken over.
const IgnoreAttr = `phx-update="ignore"`

// RenderComponentShell wraps body markup in the hydration container for
// targetID and appends the script pair every render mode shares: a
// module script loading the launcher and a JSON script carrying the
// payload.
func RenderComponentShell(moduleName, targetID, bodyHTML string, payload any) (string, error) {
	if moduleName == "" {
		return "", fmt.Errorf("missing module name")
	}
	if targetID == "" {
		return "", fmt.Errorf("missing target id")
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	escaped := strings.ReplaceAll(string(payloadJSON), "</", "<\\/")

	var sb strings.Builder
	fmt.Fprintf(&sb, `<div id="%s" %s>%s</div>`, targetID, IgnoreAttr, bodyHTML)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `<script type="module" src="%s"></script>`, EntryScriptSrc(moduleName))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `<script type="application/json" id="%s">%s</script>`, ModelElementID, escaped)
	sb.WriteString("\n")

	return sb.String(), nil
}
