package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chess-minimax/engine"
)

func main() {
	fenFlag := flag.String("fen", dragontoothmg.Startpos, "starting position")
	depthFlag := flag.Int("depth", 3, "search depth in plies for both sides")
	maxMovesFlag := flag.Int("maxmoves", 80, "abort the game after this many full moves")
	threadsFlag := flag.Int("threads", 0, "root workers per search (0 = one per core)")
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

	white := engine.NewEngine(engine.White, *depthFlag)
	black := engine.NewEngine(engine.Black, *depthFlag)
	if *threadsFlag > 0 {
		white.SetThreads(*threadsFlag)
		black.SetThreads(*threadsFlag)
	}

	var whiteNodes, blackNodes uint64
	for {
		if int(board.Fullmoveno) > *maxMovesFlag {
			fmt.Println("result: unfinished (move cap reached)")
			break
		}
		if board.Halfmoveclock >= 100 {
			fmt.Println("result: draw (fifty-move rule)")
			break
		}

		mover := white
		if !board.Wtomove {
			mover = black
		}

		move, score, err := mover.BestMove(&board)
		if errors.Is(err, engine.ErrNoLegalMoves) {
			if board.OurKingInCheck() {
				fmt.Printf("result: %s is checkmated\n", mover.Perspective())
			} else {
				fmt.Printf("result: stalemate (%s to move)\n", mover.Perspective())
			}
			break
		}
		if err != nil {
			log.Fatal().Err(err).Msg("search failed")
		}

		fmt.Printf("%3d%s %-6s score %+.3f\n", board.Fullmoveno, plyDots(board.Wtomove), move.String(), score)
		if board.Wtomove {
			whiteNodes += mover.Stats().Nodes
		} else {
			blackNodes += mover.Stats().Nodes
		}
		board.Apply(move)
	}

	fmt.Printf("nodes: white %d, black %d\n", whiteNodes, blackNodes)
	fmt.Println("final:", board.ToFen())
}

func plyDots(whiteToMove bool) string {
	if whiteToMove {
		return "."
	}
	return "..."
}
