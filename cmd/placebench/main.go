// Stress tool for the placement resolver: seeds dense random scenes and
// reports detect/resolve throughput for each search pattern.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"sceneplace/internal/engine"
	"sceneplace/pkg/placement"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML placement config")
		resolves   = flag.Int("resolves", 200, "resolutions per run")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	cfg := placement.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read config: %v\n", err)
			os.Exit(1)
		}
		cfg, err = placement.ParseConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	var opts []placement.Option
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		opts = append(opts, placement.WithLogger(logger))
	}

	testCounts := []int{100, 500, 1000, 2000, 5000}
	patterns := []placement.SearchPattern{
		placement.PatternSpiral,
		placement.PatternRadial,
		placement.PatternGrid,
	}

	for _, count := range testCounts {
		for _, pattern := range patterns {
			runCfg := cfg
			runCfg.SearchPattern = pattern
			benchScene(count, *resolves, runCfg, opts)
		}
		fmt.Println()
	}
}

func benchScene(count, resolves int, cfg placement.Config, opts []placement.Option) {
	rng := rand.New(rand.NewSource(42))

	// Spawn in a cube whose size scales with count to keep density high
	// enough that most resolves actually search.
	spawnSize := float32(20) + float32(count)/100

	scene := engine.NewScene("bench")
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		g := engine.NewGameObject(fmt.Sprintf("crate_%04d", i))
		side := 0.5 + rng.Float32()
		g.Size = rl.Vector3{X: side, Y: side, Z: side}
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		scene.AddGameObject(g)
		ids[i] = g.UID
	}

	resolver := placement.NewResolver(scene, append(opts, placement.WithConfig(cfg))...)

	start := time.Now()
	resolved := 0
	for i := 0; i < resolves; i++ {
		if resolver.ResolveCollisions(ids[rng.Intn(count)], nil, nil).Resolved {
			resolved++
		}
	}
	elapsed := time.Since(start)

	m := resolver.PerformanceMetrics()
	fmt.Printf("%5d objects | %-6s | %4d/%d resolved | %9v/resolve | avg detect %8v (%d)\n",
		count, cfg.SearchPattern, resolved, resolves,
		(elapsed / time.Duration(resolves)).Round(time.Microsecond),
		m.AvgDetectionTime.Round(time.Microsecond), m.DetectionCount)
}
