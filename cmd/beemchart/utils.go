package main

import (
	"path/filepath"
	"strings"

	"github.com/awantoch/beemchart/chart"
	"github.com/awantoch/beemchart/document"
	"github.com/awantoch/beemchart/utils"
)

// loadOrExit loads a chart document, exiting 1 on parse errors and 2 on
// schema errors.
func loadOrExit(path string) (*chart.Chart, *document.Document, bool) {
	doc, err := document.ParseFile(path)
	if err != nil {
		utils.Error("Parse error: %v", err)
		exit(1)
		return nil, nil, false
	}
	if err := document.Validate(doc); err != nil {
		utils.Error("Schema validation error: %v", err)
		exit(2)
		return nil, nil, false
	}
	c, err := doc.Build()
	if err != nil {
		utils.Error("Build error: %v", err)
		exit(2)
		return nil, nil, false
	}
	return c, doc, true
}

// outputName picks the file name for save/html: the -o flag, or the
// document's base name without extension. Bare names land in the
// configured output directory.
func outputName(docPath, flag string) string {
	name := flag
	if name == "" {
		base := filepath.Base(docPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if cfg != nil && cfg.Output.Dir != "" && filepath.Base(name) == name {
		name = filepath.Join(cfg.Output.Dir, name)
	}
	return name
}
