package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/server"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: othello <command> [flags]

commands:
  play        play one game between two search agents
  experiment  run the match ups of an experiment config
  serve       start the agent server
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(os.Args[2:])
	case "experiment":
		err = runExperiment(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(os.Args[1] + " failed")
	}
}

// setup loads the config and configures the global logger from it.
func setup(path string) (*config.Config, error) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level %q", config.ErrInvalidConfig, cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

func runPlay(args []string) error {
	flags := flag.NewFlagSet("play", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to a config file")
	whiteDepth := flags.Int("white-depth", -1, "Search depth of White (default search_depth)")
	blackDepth := flags.Int("black-depth", -1, "Search depth of Black (default search_depth)")
	flags.Parse(args)

	cfg, err := setup(*configPath)
	if err != nil {
		return err
	}
	if *whiteDepth < 0 {
		*whiteDepth = cfg.SearchDepth
	}
	if *blackDepth < 0 {
		*blackDepth = cfg.SearchDepth
	}

	white, err := agent.New(metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: *whiteDepth, Evaluation: cfg.Evaluation})
	if err != nil {
		return err
	}
	black, err := agent.New(metrics.AgentConfig{ID: 2, Kind: "alphabeta", Depth: *blackDepth, Evaluation: cfg.Evaluation})
	if err != nil {
		return err
	}

	e := engine.NewLocal(white, black, engine.WithObserver(func(u engine.Update) {
		if u.Passed {
			log.Info().Msgf("%d. %s passes", u.Step, game.PlayerName(u.Player))
			return
		}
		log.Info().Msgf("%d. %s plays (%d,%d) utility=%d nodes=%d",
			u.Step, game.PlayerName(u.Player), u.Move.Row, u.Move.Col, u.Search.Utility, u.Search.Nodes)
	}))
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println(e.State.String())
	fmt.Printf("Winner: %s (White %d, Black %d) in %s\n",
		game.PlayerName(winner), gameMetric.WhiteDiscs, gameMetric.BlackDiscs, gameMetric.Duration)
	return nil
}

func runExperiment(args []string) error {
	flags := flag.NewFlagSet("experiment", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to a config file with experiment agents and match ups")
	preset := flags.String("preset", "depth", "Experiment to run when the config names no agents: depth or pruning")
	flags.Parse(args)

	cfg, err := setup(*configPath)
	if err != nil {
		return err
	}

	run := cfg.Experiment
	if len(run.Agents) == 0 {
		switch *preset {
		case "depth":
			run = experiments.DepthPreset(cfg.Experiment.Games, cfg.SearchDepth)
		case "pruning":
			run = experiments.PruningPreset(cfg.Experiment.Games, cfg.SearchDepth)
		default:
			return fmt.Errorf("unknown preset %q", *preset)
		}
		run.OutputDir = cfg.Experiment.OutputDir
	}

	summary, err := experiments.Run(run)
	if err != nil {
		return err
	}
	for _, m := range summary.MatchUps {
		fmt.Printf("agent %d vs agent %d: %d-%d (%d draws)\n", m.Agent1, m.Agent2, m.Wins1, m.Wins2, m.Draws)
	}
	return nil
}

func runServe(args []string) error {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to a config file")
	port := flags.Int("port", 0, "Port to listen on (default server.port)")
	flags.Parse(args)

	cfg, err := setup(*configPath)
	if err != nil {
		return err
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx, cfg)
}
