// Package shell is the interactive front end: a readline loop for loading
// an image, shuffling it into pieces, and watching the solver work.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/jigsolver/config"
	"github.com/domino14/jigsolver/imgio"
	"github.com/domino14/jigsolver/puzzle"
	"github.com/domino14/jigsolver/segment"
	"github.com/domino14/jigsolver/solver"
	"github.com/domino14/jigsolver/stats"
)

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <path/to/image> - cut the image into pieces\n")
	io.WriteString(w, "shuffle - shuffle the pieces into the bag\n")
	io.WriteString(w, "solve [rounds] - run the place/segment/prune loop\n")
	io.WriteString(w, "segment [trials] - find the largest best-buddy segment once\n")
	io.WriteString(w, "stats - compatibility distribution report\n")
	io.WriteString(w, "show - print the board as a grid of piece IDs\n")
	io.WriteString(w, "seed <n> - reset the random source\n")
	io.WriteString(w, "exit\n")
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Shell drives one puzzle at a time. The solver (and with it the CM/BB
// tensors) is rebuilt whenever the bag changes.
type Shell struct {
	cfg *config.Config
	rng *frand.RNG
	pz  *puzzle.Puzzle
	sv  *solver.Pomeranz
	l   *readline.Instance
}

func New(cfg *config.Config) (*Shell, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "jigsolver> ",
		HistoryFile:         "/tmp/readline-jigsolver.tmp",
		EOFPrompt:           "exit",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &Shell{cfg: cfg, rng: puzzle.NewRNG(cfg.Seed), l: l}, nil
}

func (s *Shell) Run() {
	defer s.l.Close()
	for {
		line, err := s.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}
		if err := s.execute(line); err != nil {
			fmt.Fprintln(s.l.Stderr(), "error:", err)
		}
	}
	log.Debug().Msg("leaving shell")
}

// parseLine splits a command line, honoring quoting so image paths with
// spaces survive.
func parseLine(line string) ([]string, error) {
	return shellquote.Split(line)
}

func (s *Shell) execute(line string) error {
	fields, err := parseLine(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		usage(s.l.Stderr())
		return nil
	case "load":
		if len(args) != 1 {
			return errors.New("load needs an image path")
		}
		return s.load(args[0])
	case "shuffle":
		return s.shuffle()
	case "solve":
		return s.solve(args)
	case "segment":
		return s.segment(args)
	case "stats":
		return s.stats()
	case "show":
		if s.pz == nil || s.pz.Board == nil {
			return errors.New("no puzzle loaded")
		}
		fmt.Fprint(s.l.Stdout(), s.pz.Board.String())
		return nil
	case "seed":
		if len(args) != 1 {
			return errors.New("seed needs a number")
		}
		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		s.rng = puzzle.NewRNG(seed)
		if s.pz != nil {
			s.pz.SetRNG(s.rng)
		}
		s.sv = nil
		return nil
	}
	return fmt.Errorf("unknown command %q (try help)", cmd)
}

func (s *Shell) load(path string) error {
	img, err := imgio.LoadImage(path)
	if err != nil {
		return err
	}
	pz, err := puzzle.New(s.cfg.PatchSize, s.rng)
	if err != nil {
		return err
	}
	if err := pz.CreateFromImage(img); err != nil {
		return err
	}
	s.pz = pz
	s.sv = nil
	rows, cols := pz.Shape()
	fmt.Fprintf(s.l.Stdout(), "loaded a %dx%d puzzle (%d pieces)\n", rows, cols, rows*cols)
	return nil
}

func (s *Shell) shuffle() error {
	if s.pz == nil {
		return errors.New("no puzzle loaded")
	}
	if err := s.pz.Shuffle(); err != nil {
		return err
	}
	s.sv = nil
	return nil
}

// solverReady computes the tensors lazily; load, shuffle and seed
// invalidate them.
func (s *Shell) solverReady() error {
	if s.sv != nil {
		return nil
	}
	if s.pz == nil {
		return errors.New("no puzzle loaded")
	}
	sv, err := solver.NewPomeranz(s.pz, s.rng)
	if err != nil {
		return err
	}
	s.sv = sv
	return nil
}

func (s *Shell) solve(args []string) error {
	if err := s.solverReady(); err != nil {
		return err
	}
	rounds := s.cfg.MaxRounds
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		rounds = n
	}
	seg, err := s.sv.Solve(rounds, s.cfg.Trials)
	if err != nil {
		return err
	}
	rows, cols := s.pz.Shape()
	fmt.Fprintf(s.l.Stdout(), "final segment: %d/%d pieces %v\n", len(seg), rows*cols, seg.IDs())
	fmt.Fprint(s.l.Stdout(), s.pz.Board.String())
	return nil
}

func (s *Shell) segment(args []string) error {
	if err := s.solverReady(); err != nil {
		return err
	}
	trials := s.cfg.Trials
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		trials = n
	}
	expl := segment.NewExplorer(s.rng)
	seg := expl.FindLargest(s.pz.Board, s.sv.Buddies(), trials)
	fmt.Fprintf(s.l.Stdout(), "largest segment: %d pieces %v\n", len(seg), seg.IDs())
	return nil
}

func (s *Shell) stats() error {
	if err := s.solverReady(); err != nil {
		return err
	}
	return stats.WriteReport(s.l.Stdout(), s.sv.Compatibility(), s.sv.Buddies())
}
