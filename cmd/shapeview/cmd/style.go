package cmd

import (
	"github.com/go-drift/shapeview/pkg/config"
)

// loadStyle resolves the style document at path, or shapeview.yaml in the
// working directory when path is empty.
func loadStyle(path string) (config.Resolved, error) {
	var (
		doc *config.Document
		err error
	)
	if path == "" {
		doc, err = config.LoadOptional(".")
	} else {
		doc, err = config.Load(path)
	}
	if err != nil {
		return config.Resolved{}, err
	}
	return doc.Resolve()
}
