package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/filling-server/internal/filling"
)

var (
	log = logrus.New()

	generateParams string
	generateCount  int
	printText      bool
	verbose        bool
	logFilePath    string
)

func init() {
	flag.StringVar(&generateParams, "generate", "", "generate puzzles for the given params, e.g. 9x9")
	flag.IntVar(&generateCount, "n", 1, "how many puzzles to generate")
	flag.BoolVar(&printText, "text", false, "render boards as text grids")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.StringVar(&logFilePath, "log-file", "", "append logs to a rotating file")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFilePath != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFilePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
	}
}

// parseGameId splits an id of the form "7x7:3002...0" into its params
// and description halves.
func parseGameId(id string) (*filling.GameParams, string, error) {
	paramsStr, desc, found := strings.Cut(id, ":")
	if !found {
		return nil, "", fmt.Errorf("game id must look like <params>:<desc>")
	}
	params, err := filling.ParseGameParams(paramsStr)
	if err != nil {
		return nil, "", err
	}
	return params, desc, nil
}

func solveGameId(id string) error {
	params, desc, err := parseGameId(id)
	if err != nil {
		return err
	}
	game, err := filling.NewGameFromDesc(params, desc)
	if err != nil {
		return err
	}

	if printText {
		fmt.Println(game.Text())
	}

	if err := game.Solve(); err != nil {
		return err
	}

	if printText {
		fmt.Println(game.Text())
	} else {
		fmt.Println(game.Board.Digits())
	}
	return nil
}

func generate(r *rand.Rand) error {
	params, err := filling.ParseGameParams(generateParams)
	if err != nil {
		return err
	}
	for i := 0; i < generateCount; i++ {
		game, err := filling.NewGame(params, r)
		if err != nil {
			return err
		}
		fmt.Printf("%s:%s\n", params, game.Desc())
		if printText {
			fmt.Println(game.Text())
		}
	}
	return nil
}

func main() {
	flag.Parse()
	setupLogging()
	if verbose {
		filling.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	if generateParams != "" {
		r := rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
		if err := generate(r); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: filling [-text] <params>:<desc> ... | filling -generate <params> [-n count]")
		os.Exit(2)
	}

	exitCode := 0
	for _, id := range flag.Args() {
		if err := solveGameId(id); err != nil {
			log.WithField("id", id).Error(err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
