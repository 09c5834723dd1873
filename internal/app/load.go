package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/configsnap/internal/config"
	"github.com/specialistvlad/configsnap/internal/ctxlog"
	"github.com/specialistvlad/configsnap/internal/fsutil"
	"github.com/specialistvlad/configsnap/internal/hcl"
	"github.com/specialistvlad/configsnap/internal/props"
	"github.com/specialistvlad/configsnap/internal/yamlhost"
)

// multiLoader dispatches every host file to the loader registered for its
// extension and merges the results in the order the files are found.
type multiLoader struct {
	byExt map[string]config.Loader
}

// NewLoader returns a config.Loader that understands both HCL and YAML host
// files.
func NewLoader() config.Loader {
	l := &multiLoader{byExt: map[string]config.Loader{hcl.Extension: hcl.NewLoader()}}
	y := yamlhost.NewLoader()
	for _, ext := range yamlhost.Extensions {
		l.byExt[ext] = y
	}
	return l
}

// Extensions lists the host file extensions the loader handles.
func (l *multiLoader) Extensions() []string {
	exts := make([]string, 0, len(l.byExt))
	for ext := range l.byExt {
		exts = append(exts, ext)
	}
	return exts
}

func (l *multiLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	files, err := fsutil.CollectFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	model := &config.Model{}
	for _, file := range files {
		loader, ok := l.byExt[strings.ToLower(filepath.Ext(file))]
		if !ok {
			continue
		}
		fileModel, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(fileModel); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
	}
	ctxlog.FromContext(ctx).Debug("Host state loaded.", "files", len(files))
	return model, nil
}

// load reads the host state and applies the properties file on top of it.
func (a *App) load(ctx context.Context) (*config.Model, error) {
	model, err := a.loader.Load(ctx, a.config.HostPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load host state: %w", err)
	}
	if a.config.PropertiesPath != "" {
		properties, err := props.Read(a.config.PropertiesPath)
		if err != nil {
			return nil, err
		}
		props.Apply(model, properties)
	}
	return model, nil
}
