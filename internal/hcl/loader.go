package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/specialistvlad/lifesim/internal/ctxlog"
	"github.com/specialistvlad/lifesim/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges them, in order, over
// the built-in defaults. Expressions in each file see the settings merged
// so far as `defaults`. No paths yields the defaults unchanged.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	settings := config.Default()

	files, err := fsutil.FindFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		evalCtx, err := newEvalContext(settings)
		if err != nil {
			return nil, err
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		merge(ctx, settings, &root)
		logger.Debug("HCL file merged.", "file", file)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"files", len(files),
		"match_three", fmt.Sprintf("%dx%d", settings.MatchThree.Width, settings.MatchThree.Height),
		"elements", len(settings.Elements),
	)
	return settings, nil
}
