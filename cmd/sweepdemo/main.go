// Command sweepdemo sweeps the cross sections of a scene file along its
// curve and writes the mesh as OBJ or STL, plus an optional PNG preview.
//
// Usage:
//
//	sweepdemo -scene tube.yaml -obj tube.obj -png tube.png
//	sweepdemo -scene tube.yaml -stl tube.stl -watch
//	sweepdemo -init tube.yaml
//
// Without -scene the built-in triangle-to-hexagon scene is used. With
// -watch the scene file is reloaded and the outputs rewritten whenever it
// changes; a scene that fails to build leaves the previous outputs in place.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	sweep "github.com/ahmetayrnc/3d-sweep-line"
	"github.com/ahmetayrnc/3d-sweep-line/authoring"
	"github.com/ahmetayrnc/3d-sweep-line/export"
	"github.com/ahmetayrnc/3d-sweep-line/internal/preview"
)

type config struct {
	scene  string
	obj    string
	stl    string
	png    string
	width  int
	height int
}

func main() {
	var (
		cfg     config
		initOut = flag.String("init", "", "write the built-in scene to this .yaml or .toml file and exit")
		watch   = flag.Bool("watch", false, "recompute whenever the scene file changes")
		verbose = flag.Bool("v", false, "log pipeline diagnostics to stderr")
	)
	flag.StringVar(&cfg.scene, "scene", "", "scene file (.yaml, .yml or .toml)")
	flag.StringVar(&cfg.obj, "obj", "", "write the mesh as Wavefront OBJ")
	flag.StringVar(&cfg.stl, "stl", "", "write the mesh as binary STL")
	flag.StringVar(&cfg.png, "png", "", "write a PNG preview")
	flag.IntVar(&cfg.width, "width", 800, "preview width")
	flag.IntVar(&cfg.height, "height", 400, "preview height")
	flag.Parse()

	if *verbose {
		sweep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *initOut != "" {
		if err := writeScene(*initOut, authoring.Default()); err != nil {
			log.Fatalf("Failed to write scene: %v", err)
		}
		log.Printf("Scene written to %s\n", *initOut)
		return
	}

	scene, err := loadScene(cfg.scene)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	ex, err := scene.NewExtruder()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	if err := run(ex, cfg); err != nil {
		log.Fatalf("Failed to sweep: %v", err)
	}

	if !*watch {
		return
	}
	if cfg.scene == "" {
		log.Fatalf("-watch needs -scene")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchScene(ctx, ex, cfg); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

func loadScene(path string) (*authoring.Scene, error) {
	if path == "" {
		return authoring.Default(), nil
	}
	return authoring.LoadFile(path)
}

func writeScene(path string, s *authoring.Scene) error {
	format, err := authoring.FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := authoring.Write(f, s, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// run recomputes the mesh and writes every requested output.
func run(ex *sweep.Extruder, cfg config) error {
	mesh, err := ex.Recompute()
	if err != nil {
		return err
	}
	log.Printf("Mesh: %d vertices, %d triangles\n", mesh.VertexCount(), mesh.TriangleCount())

	if cfg.obj != "" {
		if err := writeFile(cfg.obj, func(f *os.File) error { return export.WriteOBJ(f, mesh) }); err != nil {
			return err
		}
		log.Printf("OBJ saved to %s\n", cfg.obj)
	}
	if cfg.stl != "" {
		if err := writeFile(cfg.stl, func(f *os.File) error { return export.WriteSTL(f, mesh) }); err != nil {
			return err
		}
		log.Printf("STL saved to %s\n", cfg.stl)
	}
	if cfg.png != "" {
		if err := preview.SavePNG(cfg.png, ex.Layers(), mesh, cfg.width, cfg.height); err != nil {
			return err
		}
		log.Printf("Preview saved to %s (%dx%d)\n", cfg.png, cfg.width, cfg.height)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// watchScene reloads the scene on every write to it. The directory is
// watched rather than the file so that editors which save by renaming a
// temporary file are picked up. Options are read once at startup.
func watchScene(ctx context.Context, ex *sweep.Extruder, cfg config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target, err := filepath.Abs(cfg.scene)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.Printf("Watching %s\n", cfg.scene)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			reload(ex, cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v\n", err)
		}
	}
}

// reload rebuilds the extruder input from the scene file and reruns the
// pipeline. Failures are logged and the previous outputs are kept.
func reload(ex *sweep.Extruder, cfg config) {
	scene, err := authoring.LoadFile(cfg.scene)
	if err != nil {
		log.Printf("Reload failed: %v\n", err)
		return
	}
	c, err := scene.BuildCurve()
	if err != nil {
		log.Printf("Reload failed: %v\n", err)
		return
	}
	sections, err := scene.BuildSections()
	if err != nil {
		log.Printf("Reload failed: %v\n", err)
		return
	}
	ex.SetCurve(c)
	ex.SetSections(sections)
	if err := run(ex, cfg); err != nil {
		log.Printf("Recompute failed, keeping previous mesh: %v\n", err)
		return
	}
	stats := ex.CapCacheStats()
	sweep.Logger().Debug("cap cache", "hits", stats.Hits, "misses", stats.Misses, "hit_rate", stats.HitRate())
}
