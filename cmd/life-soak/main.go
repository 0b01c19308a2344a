package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"vga-life/pkg/chip"
	"vga-life/pkg/vga"
)

func main() {
	gens := flag.Int("gens", 10, "generations to run")
	clock := flag.Int("clock", chip.DefaultClockHz, "simulated pixel clock in Hz")
	check := flag.Bool("check", true, "verify per-phase tick counts against the latency contract")
	randomizeEvery := flag.Int("randomize-every", 0, "re-randomize the grid every N generations (0 = never)")
	flag.Parse()

	eng := chip.New(*clock)
	sync := vga.NewSync()

	var phaseTicks [4]uint64
	var total uint64
	tick := func(in chip.Inputs) {
		if p := eng.Phase(); int(p) < len(phaseTicks) {
			phaseTicks[p]++
		}
		total++
		in.VSync = sync.VSync()
		sync.Tick()
		eng.Tick(in)
	}

	start := time.Now()

	for i := 0; eng.Phase() == chip.PhaseInit; i++ {
		if i > chip.CellCount {
			log.Fatalf("boot init still active after %d ticks", i)
		}
		tick(chip.Inputs{})
	}
	if *check && phaseTicks[chip.PhaseInit] != chip.CellCount {
		log.Fatalf("boot init took %d ticks, want %d", phaseTicks[chip.PhaseInit], chip.CellCount)
	}
	fmt.Printf("boot  init=%d pop=%d lfsr=%04x\n", phaseTicks[chip.PhaseInit], eng.Population(), eng.Rand())

	// A generation needs the pace interval, then up to one full frame of
	// waiting for the next vsync pulse, then the update+copy latency.
	limit := uint64(eng.Interval()) + vga.FrameTicks + 11*chip.CellCount + 16
	for g := 1; g <= *gens; g++ {
		before := phaseTicks
		randomize := *randomizeEvery > 0 && g%*randomizeEvery == 0
		in := chip.Inputs{Run: true, Randomize: randomize}

		if randomize {
			for i := uint64(0); eng.Phase() != chip.PhaseInit; i++ {
				if i > limit {
					log.Fatalf("generation %d: randomize never honored within %d ticks", g, limit)
				}
				tick(in)
			}
			for eng.Phase() == chip.PhaseInit {
				tick(in)
			}
		} else {
			target := eng.Generation() + 1
			for i := uint64(0); eng.Generation() != target; i++ {
				if i > limit {
					log.Fatalf("generation %d did not complete within %d ticks", g, limit)
				}
				tick(in)
			}
		}

		idle := phaseTicks[chip.PhaseIdle] - before[chip.PhaseIdle]
		update := phaseTicks[chip.PhaseUpdate] - before[chip.PhaseUpdate]
		copied := phaseTicks[chip.PhaseCopy] - before[chip.PhaseCopy]
		init := phaseTicks[chip.PhaseInit] - before[chip.PhaseInit]

		if *check {
			if randomize {
				if init != chip.CellCount {
					log.Fatalf("generation %d: randomize init took %d ticks, want %d", g, init, chip.CellCount)
				}
			} else if update != 9*chip.CellCount || copied != chip.CellCount {
				log.Fatalf("generation %d latency: update=%d copy=%d, want %d and %d",
					g, update, copied, 9*chip.CellCount, chip.CellCount)
			}
		}

		fmt.Printf("gen %-4d pop=%-4d lfsr=%04x idle=%d update=%d copy=%d init=%d\n",
			g, eng.Population(), eng.Rand(), idle, update, copied, init)
	}

	elapsed := time.Since(start)
	fmt.Printf("done  %d generations, %d ticks in %v (%.1fM ticks/s)\n",
		*gens, total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds()/1e6)
}
