// Command autotile expands autotile artwork into atlases and inspects
// orientation masks.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"tilesystem/internal/autotile"
	"tilesystem/internal/config"
	"tilesystem/internal/orient"
	"tilesystem/internal/pixel"
	"tilesystem/internal/render"
	"tilesystem/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := os.Args[1]
	args := os.Args[2:]

	var code int
	switch cmd {
	case "expand":
		code = runExpand(ctx, args)
	case "build":
		code = runBuild(ctx, args)
	case "metrics":
		code = runMetrics(args)
	case "mask":
		code = runMask(args)
	case "rotate":
		code = runRotate(ctx, args)
	case "preview":
		code = runPreview(ctx, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		code = 1
	}
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: autotile <command> [flags]

Commands:
  expand   --source art.png --tile N     Expand artwork into an atlas PNG
  build    [--config file] [job...]      Run expansion jobs from the config
  metrics  --tile N                      Show atlas size and tile UVs
  mask     <mask>...                     Show names, canonical forms and atlas indices
  rotate   --source tile.png --mask M    Export the rotations of a tile
  preview  [--config file] [--page N]    Print an atlas or map page as ANSI art

Run "autotile <command> --help" for the flags of a command.`)
}

// artworkFlags are the expansion parameters shared by several commands.
type artworkFlags struct {
	source     string
	layout     string
	tile       int
	tileHeight int
	innerJoins bool
	border     int
	clampEdges bool
	colorKey   string
	verbose    bool
}

func (a *artworkFlags) register(flags *pflag.FlagSet, withSource bool) {
	if withSource {
		flags.StringVarP(&a.source, "source", "s", "", "source artwork PNG")
		flags.StringVar(&a.colorKey, "color-key", "", "#RRGGBB loaded as transparent")
	}
	flags.StringVarP(&a.layout, "layout", "l", "basic", "artwork layout (basic or extended)")
	flags.IntVarP(&a.tile, "tile", "t", 0, "tile width in pixels")
	flags.IntVar(&a.tileHeight, "tile-height", 0, "tile height in pixels (default: tile width)")
	flags.BoolVarP(&a.innerJoins, "inner-joins", "j", false, "artwork has the inner-join row")
	flags.IntVarP(&a.border, "border", "b", 0, "border size around each atlas tile")
	flags.BoolVar(&a.clampEdges, "clamp-edges", false, "keep stretched borders instead of sampling ground")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log expansion details")
}

// job turns the flags into an expansion job so they share the config
// file's defaults and validation.
func (a *artworkFlags) job(name string) (config.Job, error) {
	j := config.Job{
		Name:       name,
		Source:     a.source,
		Layout:     a.layout,
		TileWidth:  a.tile,
		TileHeight: a.tileHeight,
		InnerJoins: a.innerJoins,
		Border:     a.border,
		ClampEdges: a.clampEdges,
		ColorKey:   a.colorKey,
	}
	if j.TileHeight == 0 {
		j.TileHeight = j.TileWidth
	}
	if j.Name == "" {
		j.Name = strings.TrimSuffix(filepath.Base(a.source), filepath.Ext(a.source))
	}
	if j.Source == "" {
		// metrics works without artwork.
		j.Source = "-"
	}
	return j, j.Validate()
}

func (a *artworkFlags) setupLogging() {
	if a.verbose {
		autotile.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func progressPrinter(name string) func(done, total int) {
	return func(done, total int) {
		fmt.Fprintf(os.Stderr, "\r%s: %d/%d orientations", name, done, total)
		if done == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

func printAtlas(name, out string, atlas *autotile.Atlas) {
	m := atlas.Metrics
	fmt.Printf("%s → %s\n", name, out)
	fmt.Printf("  layout %s, inner joins %v, %d tiles\n", atlas.Layout, atlas.InnerJoins, m.Count)
	fmt.Printf("  atlas %dx%d, %d columns × %d rows of %dx%d (border %d)\n",
		m.AtlasWidth, m.AtlasHeight, m.Columns, m.Rows, m.OuterWidth, m.OuterHeight, m.BorderSize)
}

// --- expand ---

func runExpand(ctx context.Context, args []string) int {
	flags := pflag.NewFlagSet("expand", pflag.ExitOnError)
	var a artworkFlags
	a.register(flags, true)
	out := flags.StringP("out", "o", "", "output PNG (default: <source>_atlas.png)")
	flags.Parse(args)
	a.setupLogging()

	if a.source == "" {
		fmt.Fprintln(os.Stderr, "Error: --source is required")
		return 1
	}
	j, err := a.job("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *out == "" {
		*out = strings.TrimSuffix(a.source, filepath.Ext(a.source)) + "_atlas.png"
	}

	atlas, err := server.BuildAtlas(ctx, j, progressPrinter(j.Name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := atlas.Image.SavePNG(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	printAtlas(j.Name, *out, atlas)
	return 0
}

// --- build ---

func runBuild(ctx context.Context, args []string) int {
	flags := pflag.NewFlagSet("build", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", config.DefaultPath, "configuration file")
	flags.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	autotile.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	jobs := cfg.Jobs
	if names := flags.Args(); len(names) > 0 {
		jobs = jobs[:0:0]
		for _, name := range names {
			j, ok := cfg.Job(name)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown job %q\n", name)
				return 1
			}
			jobs = append(jobs, j)
		}
	}
	if len(jobs) == 0 {
		fmt.Fprintf(os.Stderr, "No jobs in %s\n", *configPath)
		return 1
	}

	failed := 0
	for _, j := range jobs {
		atlas, err := server.BuildAtlas(ctx, j, progressPrinter(j.Name))
		if err == nil {
			err = atlas.Image.SavePNG(j.Output)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			if ctx.Err() != nil {
				return 1
			}
			failed++
			continue
		}
		printAtlas(j.Name, j.Output, atlas)
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d job(s) failed\n", failed, len(jobs))
		return 1
	}
	fmt.Printf("\nAll %d job(s) built\n", len(jobs))
	return 0
}

// --- metrics ---

func runMetrics(args []string) int {
	flags := pflag.NewFlagSet("metrics", pflag.ExitOnError)
	var a artworkFlags
	a.register(flags, false)
	uv := flags.Bool("uv", false, "list per-tile texture coordinates")
	flags.Parse(args)
	a.setupLogging()

	j, err := a.job("metrics")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	layout, err := autotile.ParseLayout(j.Layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Metrics only depend on sizes, so a blank source of the right shape
	// is enough.
	w, h, err := layout.SourceSize(j.TileWidth, j.TileHeight, j.InnerJoins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	e, err := autotile.New(layout, pixel.NewBuffer(w, h), j.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	aw, ah, unused := e.CalculateMetrics()
	m := e.Metrics()
	fmt.Printf("Source artwork:  %dx%d\n", w, h)
	fmt.Printf("Orientations:    %d\n", e.OrientationCount())
	fmt.Printf("Outer tile:      %dx%d (border %d)\n", m.OuterWidth, m.OuterHeight, m.BorderSize)
	fmt.Printf("Atlas:           %dx%d, %d columns × %d rows\n", aw, ah, m.Columns, m.Rows)
	fmt.Printf("Unused pixels:   %d (%.1f%%)\n", unused, float64(unused)/float64(aw*ah)*100)

	if *uv {
		fmt.Println()
		for i, mask := range e.Orientations() {
			u0, v0, u1, v1 := m.UV(i)
			fmt.Printf("  %2d %s  u %.5f..%.5f  v %.5f..%.5f\n", i, mask, u0, u1, v0, v1)
		}
	}
	return 0
}

// --- mask ---

// parseMask accepts an eight character neighbour name, a decimal value or
// a 0x hex value.
func parseMask(s string) (orient.Mask, error) {
	if len(s) == 8 && strings.Trim(s, "01") == "" {
		return orient.MaskFromName(s)
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid mask %q (want 8 binary digits, decimal or 0x hex)", s)
	}
	return orient.Mask(v), nil
}

func runMask(args []string) int {
	flags := pflag.NewFlagSet("mask", pflag.ExitOnError)
	all := flags.Bool("all", false, "list every atlas orientation")
	innerJoins := flags.BoolP("inner-joins", "j", false, "use the inner-join orientation table with --all")
	flags.Parse(args)

	if *all {
		for i, m := range autotile.Orientations(*innerJoins) {
			fmt.Printf("%2d  %s  0x%02X\n", i, m, uint8(m))
		}
		return 0
	}
	if flags.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: autotile mask <mask>... | --all [--inner-joins]")
		return 1
	}

	code := 0
	for _, s := range flags.Args() {
		m, err := parseMask(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = 1
			continue
		}
		joined := autotile.Canonicalize(m, true)
		joinless := autotile.Canonicalize(m, false)
		fmt.Printf("%s  0x%02X  %d\n", m, uint8(m), uint8(m))
		fmt.Printf("  inner joins:     %s  tile %d\n", joined, autotile.AtlasIndex(m, true))
		fmt.Printf("  no inner joins:  %s  tile %d\n", joinless, autotile.AtlasIndex(m, false))
		fmt.Printf("  rotations:      ")
		for _, r := range orient.GetMasksWithRotationalSymmetry(m) {
			fmt.Printf(" %s", r)
		}
		fmt.Println()
	}
	return code
}

// --- rotate ---

func runRotate(ctx context.Context, args []string) int {
	flags := pflag.NewFlagSet("rotate", pflag.ExitOnError)
	source := flags.StringP("source", "s", "", "single tile PNG")
	maskArg := flags.StringP("mask", "m", "", "orientation mask drawn by the tile")
	configPath := flags.StringP("config", "c", config.DefaultPath, "configuration file (with --job)")
	jobName := flags.String("job", "", "export every tile of this job's atlas")
	outDir := flags.StringP("out", "o", ".", "output directory")
	flags.Parse(args)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	type tile struct {
		img  *pixel.Buffer
		mask orient.Mask
	}
	var tiles []tile

	switch {
	case *jobName != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		j, ok := cfg.Job(*jobName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown job %q\n", *jobName)
			return 1
		}
		atlas, err := server.BuildAtlas(ctx, j, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		for i, m := range atlas.Orientations {
			tiles = append(tiles, tile{atlas.Tile(i), m})
		}
	case *source != "" && *maskArg != "":
		m, err := parseMask(*maskArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		img, err := pixel.LoadPNG(*source, pixel.LoadOptions{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		tiles = append(tiles, tile{img, m})
	default:
		fmt.Fprintln(os.Stderr, "Usage: autotile rotate --source tile.png --mask M | --job name [--out dir]")
		return 1
	}

	written := make(map[orient.Mask]bool)
	for _, t := range tiles {
		for _, v := range render.RotatedVariants(t.img, t.mask) {
			if written[v.Mask] {
				continue
			}
			path := filepath.Join(*outDir, v.Mask.String()+".png")
			if err := v.Image.SavePNG(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
			written[v.Mask] = true
		}
	}
	fmt.Printf("Wrote %d tile(s) to %s\n", len(written), *outDir)
	return 0
}

// --- preview ---

func runPreview(ctx context.Context, args []string) int {
	flags := pflag.NewFlagSet("preview", pflag.ExitOnError)
	var a artworkFlags
	a.register(flags, true)
	configPath := flags.StringP("config", "c", config.DefaultPath, "configuration file")
	mapPath := flags.String("map", "", "painted grid file or directory (overrides config)")
	page := flags.IntP("page", "p", 1, "page to print, starting at 1")
	width := flags.Int("width", 80, "terminal columns")
	height := flags.Int("height", 24, "terminal rows")
	actual := flags.Bool("actual-size", false, "print at 1:1 instead of fitting the terminal")
	flags.Parse(args)
	a.setupLogging()

	var pages []render.Page
	if a.source != "" {
		j, err := a.job("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		atlas, err := server.BuildAtlas(ctx, j, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		pages = append(pages, render.Page{Title: "atlas " + j.Name, Image: atlas.Image})
	} else {
		cfg, err := config.Load(*configPath)
		if errors.Is(err, fs.ErrNotExist) {
			cfg = config.Default()
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if *mapPath != "" {
			cfg.Server.Map = *mapPath
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
		pages, err = server.BuildPages(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if *page < 1 || *page > len(pages) {
		fmt.Fprintf(os.Stderr, "Error: page %d out of range [1..%d]\n", *page, len(pages))
		return 1
	}

	p := render.NewPreview(pages, *width, *height)
	for i := 1; i < *page; i++ {
		p.Apply(render.ActionNextPage)
	}
	if *actual {
		p.Apply(render.ActionToggleFit)
	}
	fmt.Print(render.ClearScreen(), p.Render(), render.Reset, render.MoveTo(0, *height), "\n")
	return 0
}
