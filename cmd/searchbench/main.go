package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"chess-minimax/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	threadsFlag := flag.Int("threads", 0, "root workers per search (0 = one per core)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	var cpuFile *os.File
	var err error
	if *cpuProfile != "" {
		cpuFile, err = os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	// FEN selection
	fen := dragontoothmg.Startpos
	if *fenFlag != "" {
		fen = *fenFlag
	}

	depth := *depthFlag
	repeat := *repeatFlag

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, depth, repeat)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		// Fresh position for each run
		board, err := engine.ParseFen(fen)
		if err != nil {
			log.Fatalf("parsing FEN: %v", err)
		}

		color := engine.White
		if !board.Wtomove {
			color = engine.Black
		}
		eng := engine.NewEngine(color, depth)
		if *threadsFlag > 0 {
			eng.SetThreads(*threadsFlag)
		}

		iterStart := time.Now()
		move, score, err := eng.BestMove(&board)
		iterElapsed := time.Since(iterStart)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}

		stats := eng.Stats()
		totalNodes += stats.Nodes
		fmt.Printf("iteration %d: bestmove %s score %.3f nodes %d time=%v\n",
			i+1, move.String(), score, stats.Nodes, iterElapsed)
	}
	totalElapsed := time.Since(startAll)
	nps := float64(totalNodes) / totalElapsed.Seconds()
	fmt.Printf("total: nodes=%d time=%v nps=%.0f\n", totalNodes, totalElapsed, nps)

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
