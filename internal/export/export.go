// Package export renders the site into a directory of static files that
// any file server can host.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"

	"github.com/Hashversion/koes/internal/fonts"
	"github.com/Hashversion/koes/internal/site"
	"github.com/Hashversion/koes/internal/static"
	"github.com/Hashversion/koes/internal/templates"
)

// ErrNoOutDir is returned when Options.OutDir is empty.
var ErrNoOutDir = errors.New("export: output directory not set")

// Options configures an export run.
type Options struct {
	OutDir   string
	FontsDir string // copied to /fonts when present
	Site     site.Site
	Logger   *slog.Logger
}

// Manifest describes one export. It is written to the build manifest path.
type Manifest struct {
	BuildID     string    `json:"buildId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Pages       []string  `json:"pages"`
	Assets      []string  `json:"assets"`
}

// Export renders every route and asset into opts.OutDir. Files are
// replaced atomically, so a concurrent reader sees either the old or the
// new version of each file.
func Export(ctx context.Context, opts Options) (*Manifest, error) {
	if opts.OutDir == "" {
		return nil, ErrNoOutDir
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &exporter{
		out:    opts.OutDir,
		logger: logger,
		manifest: &Manifest{
			BuildID:     uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		},
	}

	if err := os.MkdirAll(e.out, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	for _, route := range templates.Routes() {
		if err := e.page(ctx, opts.Site, route, pageFile(route.Path)); err != nil {
			return nil, err
		}
	}
	if err := e.page(ctx, opts.Site, templates.NotFound(), "404.html"); err != nil {
		return nil, err
	}

	css, err := fonts.Stylesheet(site.FontsPrefix, fonts.Default...)
	if err != nil {
		return nil, fmt.Errorf("build font stylesheet: %w", err)
	}
	if err := e.asset(ctx, site.FontsStylesheetPath, []byte(css)); err != nil {
		return nil, err
	}

	if err := e.copyFS(ctx, static.FS(), site.StaticPrefix); err != nil {
		return nil, err
	}

	if opts.FontsDir != "" {
		info, err := os.Stat(opts.FontsDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("fonts directory not found, skipping", "dir", opts.FontsDir)
		case err != nil:
			return nil, fmt.Errorf("stat fonts directory: %w", err)
		case !info.IsDir():
			return nil, fmt.Errorf("fonts directory %s is not a directory", opts.FontsDir)
		default:
			if err := e.copyFS(ctx, os.DirFS(opts.FontsDir), site.FontsPrefix); err != nil {
				return nil, err
			}
		}
	}

	if err := e.finish(ctx); err != nil {
		return nil, err
	}
	return e.manifest, nil
}

type exporter struct {
	out      string
	logger   *slog.Logger
	manifest *Manifest
}

func (e *exporter) page(ctx context.Context, s site.Site, route templates.Route, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := templates.Document(s, route).Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", route.Path, err)
	}
	if err := writeFile(filepath.Join(e.out, filepath.FromSlash(file)), buf.Bytes()); err != nil {
		return err
	}

	e.manifest.Pages = append(e.manifest.Pages, "/"+file)
	e.logger.Debug("exported page", "path", route.Path, "file", file, "bytes", buf.Len())
	return nil
}

// asset writes data at the URL path urlPath below the output directory.
func (e *exporter) asset(ctx context.Context, urlPath string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel := strings.TrimPrefix(path.Clean(urlPath), "/")
	if err := writeFile(filepath.Join(e.out, filepath.FromSlash(rel)), data); err != nil {
		return err
	}

	e.manifest.Assets = append(e.manifest.Assets, "/"+rel)
	e.logger.Debug("exported asset", "path", "/"+rel, "bytes", len(data))
	return nil
}

func (e *exporter) copyFS(ctx context.Context, fsys fs.FS, prefix string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", prefix, err)
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		return e.asset(ctx, path.Join(prefix, p), data)
	})
}

func (e *exporter) finish(ctx context.Context) error {
	if err := e.asset(ctx, site.BuildIDPath, []byte(e.manifest.BuildID)); err != nil {
		return err
	}

	sort.Strings(e.manifest.Pages)
	sort.Strings(e.manifest.Assets)

	data, err := json.MarshalIndent(e.manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode build manifest: %w", err)
	}
	return e.asset(ctx, site.BuildManifestPath, append(data, '\n'))
}

// pageFile maps a route path to its exported file: "/" is index.html and
// "/docs/intro" is docs/intro.html.
func pageFile(routePath string) string {
	p := strings.Trim(path.Clean("/"+routePath), "/")
	if p == "" {
		return "index.html"
	}
	return p + ".html"
}

// writeFile atomically replaces name with data.
func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}

	pending, err := renameio.NewPendingFile(name, renameio.WithStaticPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", name, err)
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
