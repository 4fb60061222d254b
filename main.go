package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Conventional DIMACS solver exit codes.
const (
	ExitSat           = 10
	ExitUnsat         = 20
	ExitIndeterminate = 0
)

var startTime time.Time

func GetFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug,d",
			Usage: "Debug mode",
		},
		cli.BoolFlag{
			Name:  "verbosity,verb",
			Usage: "Verbosity mode",
		},
		cli.IntFlag{
			Name:  "cpu-time-limit",
			Usage: "Limit on CPU time allowed in seconds",
			Value: -1,
		},
	}
}

func printProblemStatistics(s *Solver) {
	fmt.Printf("c ============================[ Problem Statistics ]=============================\n")
	fmt.Printf("c |                                                                             |\n")
	fmt.Printf("c |  Number of variables:  %12d                                         |\n", s.NumVars())
	fmt.Printf("c |  Number of clauses:    %12d                                         |\n", s.NumClauses())
	fmt.Printf("c ================================================================================\n")
}

func printStatistics(s *Solver) {
	elapsedTimeSeconds := time.Since(startTime).Seconds()
	fmt.Printf("c ================================================================================\n")
	fmt.Printf("c conflicts: %12d (%.02f / sec)\n", s.Statistics.ConflictCount, float64(s.Statistics.ConflictCount)/elapsedTimeSeconds)
	fmt.Printf("c decisions: %12d (%.02f / sec)\n", s.Statistics.DecisionCount, float64(s.Statistics.DecisionCount)/elapsedTimeSeconds)
	fmt.Printf("c propagations: %12d (%.02f / sec)\n", s.Statistics.PropagationCount, float64(s.Statistics.PropagationCount)/elapsedTimeSeconds)
	fmt.Printf("c learnt clauses: %12d\n", s.NumLearnts())
	fmt.Printf("c cpu time: %12f\n", elapsedTimeSeconds)
}

//setTimeOut interrupts the solver once the CPU time limit is reached.
func setTimeOut(s *Solver, limitTimeSeconds int) {
	if limitTimeSeconds <= 0 {
		return
	}
	go func() {
		<-time.After(time.Duration(limitTimeSeconds) * time.Second)
		fmt.Println("c TIMEOUT")
		s.Interrupt()
	}()
}

//setInterrupt interrupts the solver on SIGINT/SIGTERM.
func setInterrupt(s *Solver) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("c INTERRUPT")
		s.Interrupt()
	}()
}

//printModel writes the model as a DIMACS value line.
func printModel(s *Solver) {
	fmt.Print("v ")
	for i := 0; i < s.NumVars(); i++ {
		if s.Model[i] == LitBoolTrue {
			fmt.Printf("%d ", i+1)
		} else {
			fmt.Printf("%d ", -(i + 1))
		}
	}
	fmt.Print("0\n")
}

func init() {
	startTime = time.Now()
}

func main() {
	app := cli.NewApp()
	app.Name = "cdcl-solver"
	app.Usage = "A CDCL SAT Solver written in Go"
	app.ArgsUsage = "input.cnf"
	app.Flags = GetFlags()

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			cli.ShowAppHelpAndExit(c, 2)
		}
		inputFile := c.Args().Get(0)
		fp, err := os.Open(inputFile)
		if err != nil {
			return err
		}
		defer fp.Close()

		solver := NewSolver()
		solver.Verbosity = c.Bool("verbosity")
		if c.Bool("debug") {
			solver.Logger.SetOutput(os.Stderr)
			solver.Logger.SetLevel(logrus.DebugLevel)
		}
		setTimeOut(solver, c.Int("cpu-time-limit"))
		setInterrupt(solver)

		in := bufio.NewScanner(fp)
		if err := parseDimacs(in, solver); err != nil {
			return err
		}
		if solver.Verbosity {
			printProblemStatistics(solver)
		}

		status := solver.Solve()

		if solver.Verbosity {
			printStatistics(solver)
		}
		if c.Bool("debug") {
			pp.Fprintln(os.Stderr, solver.Statistics)
		}
		switch status {
		case LitBoolTrue:
			fmt.Println("\ns SATISFIABLE")
			printModel(solver)
			os.Exit(ExitSat)
		case LitBoolFalse:
			fmt.Println("\ns UNSATISFIABLE")
			os.Exit(ExitUnsat)
		default:
			fmt.Println("\ns INDETERMINATE")
			os.Exit(ExitIndeterminate)
		}
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
