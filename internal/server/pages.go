package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"tilesystem/internal/autotile"
	"tilesystem/internal/config"
	"tilesystem/internal/maps"
	"tilesystem/internal/pixel"
	"tilesystem/internal/render"
)

// defaultCellSize is the composed map cell size when no atlas sets one.
const defaultCellSize = 8

// BuildAtlas loads a job's artwork and expands it.
func BuildAtlas(ctx context.Context, job config.Job, progress func(done, total int)) (*autotile.Atlas, error) {
	layout, err := autotile.ParseLayout(job.Layout)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job.Name, err)
	}
	opts, err := job.LoadOptions()
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job.Name, err)
	}
	src, err := pixel.LoadPNG(job.Source, opts)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job.Name, err)
	}
	e, err := autotile.New(layout, src, job.Options())
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job.Name, err)
	}
	atlas, err := e.Build(ctx, progress)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job.Name, err)
	}
	return atlas, nil
}

// LoadMapSource loads a map file, or every map in a directory. An empty
// path yields the built-in default map.
func LoadMapSource(path string) ([]*maps.Map, error) {
	if path == "" {
		return []*maps.Map{maps.DefaultMap()}, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat map %s: %w", path, err)
	}
	if !info.IsDir() {
		m, err := maps.LoadMap(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return []*maps.Map{m}, nil
	}
	all, err := maps.LoadMaps(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*maps.Map, 0, len(names))
	for _, name := range names {
		out = append(out, all[name])
	}
	return out, nil
}

// BuildPages expands the server's jobs and composes each map with the
// resulting atlases. Jobs that fail are logged and skipped.
func BuildPages(ctx context.Context, cfg *config.Config, log *slog.Logger) ([]render.Page, error) {
	if log == nil {
		log = slog.Default()
	}

	var pages []render.Page
	atlases := make(map[string]*autotile.Atlas)
	cellW, cellH := 0, 0

	for _, job := range cfg.ServerJobs() {
		atlas, err := BuildAtlas(ctx, job, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			log.Warn("skipping job", "job", job.Name, "err", err)
			continue
		}
		atlases[job.Name] = atlas
		if cellW == 0 {
			cellW, cellH = atlas.Metrics.TileWidth, atlas.Metrics.TileHeight
		}
		w, h := atlas.Image.Width(), atlas.Image.Height()
		pages = append(pages, render.Page{
			Title: "atlas " + job.Name,
			Info:  fmt.Sprintf("%s, %d tiles, %dx%d", atlas.Layout, len(atlas.Orientations), w, h),
			Image: atlas.Image,
		})
		log.Debug("atlas ready", "job", job.Name, "width", w, "height", h)
	}
	if cellW == 0 {
		cellW, cellH = defaultCellSize, defaultCellSize
	}

	mapList, err := LoadMapSource(cfg.Server.Map)
	if err != nil {
		return nil, err
	}
	for _, m := range mapList {
		pages = append(pages, render.Page{
			Title: "map " + m.Name,
			Info:  fmt.Sprintf("%dx%d cells", m.Width, m.Height),
			Image: render.ComposeMap(m, atlases, cellW, cellH),
		})
	}
	return pages, nil
}
