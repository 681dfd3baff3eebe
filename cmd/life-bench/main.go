package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"sparse-life/internal/sims/sparselife"
)

type scenario struct {
	pattern string
	workers int
}

type scenarioResult struct {
	scenario
	generations uint64
	startPop    int
	finalPop    int
	peakPop     int
	elapsed     time.Duration
}

func main() {
	generations := flag.Int("generations", 1000, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenarios run concurrently")
	fanout := flag.Int("fanout", 1, "evolution goroutines inside each world (0 uses GOMAXPROCS)")
	soup := flag.Bool("soup", true, "include a random soup scenario")
	flag.Parse()

	var sets []scenario
	for _, name := range sparselife.Patterns() {
		sets = append(sets, scenario{pattern: name, workers: *fanout})
	}
	if *soup {
		sets = append(sets, scenario{pattern: "", workers: *fanout})
	}

	fmt.Printf("Running %d scenarios (%d workers, %d generations)\n", len(sets), *workers, *generations)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *generations)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].elapsed > all[j].elapsed })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		name := res.pattern
		if name == "" {
			name = "soup"
		}
		perGen := time.Duration(0)
		if res.generations > 0 {
			perGen = res.elapsed / time.Duration(res.generations)
		}
		fmt.Printf("%-18s gen=%d pop %d -> %d (peak %d) took %s (%s/gen)\n",
			name, res.generations, res.startPop, res.finalPop, res.peakPop,
			res.elapsed.Round(time.Microsecond), perGen)
	}
}

func runScenario(sc scenario, generations int) scenarioResult {
	cfg := sparselife.DefaultConfig()
	cfg.Pattern = sc.pattern
	cfg.Workers = sc.workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	sim := sparselife.New(cfg)
	if err := sim.Load(cfg.Seed); err != nil {
		log.Fatalf("load %q: %v", sc.pattern, err)
	}

	res := scenarioResult{scenario: sc, startPop: sim.Population()}
	res.peakPop = res.startPop
	began := time.Now()
	for i := 0; i < generations; i++ {
		sim.Step()
		if pop := sim.Population(); pop > res.peakPop {
			res.peakPop = pop
		}
	}
	res.elapsed = time.Since(began)
	res.generations = sim.Generation()
	res.finalPop = sim.Population()
	return res
}
