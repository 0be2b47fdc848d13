package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chess-minimax/engine"
)

// result is the machine-readable shape of one search, for -json consumers.
type result struct {
	BestMove string  `json:"best_move"`
	Score    float64 `json:"score"`
	Depth    int     `json:"depth"`
	Color    string  `json:"color"`
	Nodes    uint64  `json:"nodes"`
	TimeMs   int64   `json:"time_ms"`
}

func main() {
	fenFlag := flag.String("fen", dragontoothmg.Startpos, "FEN of the position to search")
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	colorFlag := flag.String("color", "", "perspective color: white or black (default: side to move)")
	threadsFlag := flag.Int("threads", 0, "concurrent root workers (0 = one per core)")
	jsonFlag := flag.Bool("json", false, "print the result as JSON")
	verboseFlag := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verboseFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	board, err := engine.ParseFen(*fenFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}

	color := engine.White
	if !board.Wtomove {
		color = engine.Black
	}
	if *colorFlag != "" {
		color, err = engine.ParseColor(*colorFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("bad color")
		}
	}

	eng := engine.NewEngine(color, *depthFlag)
	if *threadsFlag > 0 {
		eng.SetThreads(*threadsFlag)
	}

	start := time.Now()
	move, score, err := eng.BestMove(&board)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}

	stats := eng.Stats()
	if *jsonFlag {
		out := result{
			BestMove: move.String(),
			Score:    score,
			Depth:    eng.MaxDepth(),
			Color:    color.String(),
			Nodes:    stats.Nodes,
			TimeMs:   elapsed.Milliseconds(),
		}
		if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
			log.Fatal().Err(err).Msg("encoding result")
		}
		return
	}

	fmt.Printf("bestmove %s score %.3f\n", move.String(), score)
	fmt.Printf("nodes %d  leaf evals %d  cutoffs %d/%d  cached %d  probes %d (%d hits)  time %v\n",
		stats.Nodes, stats.LeafEvals, stats.BetaCutoffs, stats.AlphaCutoffs,
		stats.TableSize, stats.TableProbes, stats.TableHits, elapsed)
}
