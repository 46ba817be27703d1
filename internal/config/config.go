// Package config loads the statespace CLI settings from YAML.
//
// Every field has a default (see Default), so a config file only needs the keys it
// changes. Command-line flags override file values in cmd/statespace.
//
//	problem: tilepuzzle
//	strategy: best-first
//	max_depth: 0
//	max_expansions: 0
//	format: dot
//	log:
//	  level: info
//	  format: text
//	waterjug: {capacity_a: 4, capacity_b: 3, target: 2}
//	nqueens: {n: 4}
//	tilepuzzle:
//	  initial: "2,4,3,1,5,6,7,8,0"
//	  goal: ""          # empty selects the ordered board
//	  heuristic: manhattan
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/export"
	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/problems/nqueens"
	"github.com/katalvlaran/statespace/problems/tilepuzzle"
	"github.com/katalvlaran/statespace/problems/waterjug"
)

// MaxFileSize is the largest config file Load accepts (64KB).
const MaxFileSize = 64 * 1024

// Problem names.
const (
	ProblemWaterJug   = "waterjug"
	ProblemNQueens    = "nqueens"
	ProblemTilePuzzle = "tilepuzzle"
)

// Problems lists the known problem names.
var Problems = []string{ProblemWaterJug, ProblemNQueens, ProblemTilePuzzle}

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	Problem       string     `yaml:"problem"`
	Strategy      string     `yaml:"strategy"`
	MaxDepth      int        `yaml:"max_depth"`
	MaxExpansions int        `yaml:"max_expansions"`
	Format        string     `yaml:"format"`
	Log           Log        `yaml:"log"`
	WaterJug      WaterJug   `yaml:"waterjug"`
	NQueens       NQueens    `yaml:"nqueens"`
	TilePuzzle    TilePuzzle `yaml:"tilepuzzle"`
}

// Log selects the logger level and handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WaterJug parameterises the jug puzzle.
type WaterJug struct {
	CapacityA int `yaml:"capacity_a"`
	CapacityB int `yaml:"capacity_b"`
	Target    int `yaml:"target"`
}

// NQueens parameterises the queens puzzle.
type NQueens struct {
	N int `yaml:"n"`
}

// TilePuzzle parameterises the sliding-tile puzzle.
type TilePuzzle struct {
	Initial   string `yaml:"initial"`
	Goal      string `yaml:"goal"`
	Heuristic string `yaml:"heuristic"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Problem:  ProblemWaterJug,
		Strategy: graphsearch.StrategyBreadthFirst.String(),
		Format:   string(export.FormatDOT),
		Log:      Log{Level: "info", Format: telemetry.FormatText},
		WaterJug: WaterJug{
			CapacityA: waterjug.DefaultCapacityA,
			CapacityB: waterjug.DefaultCapacityB,
			Target:    waterjug.DefaultTarget,
		},
		NQueens: NQueens{N: 4},
		TilePuzzle: TilePuzzle{
			Initial:   "2,4,3,1,5,6,7,8,0",
			Heuristic: tilepuzzle.Misplaced.String(),
		},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return Config{}, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInvalidConfig, path, info.Size(), MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the shared fields and the parameters of the selected problem.
// Sections of other problems are decoded but not checked.
func (c Config) Validate() error {
	var errs []error
	if err := c.validateProblem(); err != nil {
		errs = append(errs, err)
	}
	if _, err := graphsearch.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth %d is negative", c.MaxDepth))
	}
	if c.MaxExpansions < 0 {
		errs = append(errs, fmt.Errorf("max_expansions %d is negative", c.MaxExpansions))
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := telemetry.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := telemetry.NewLogger(io.Discard, 0, c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// validateProblem builds the selected problem and discards it.
func (c Config) validateProblem() error {
	var err error
	switch c.Problem {
	case ProblemWaterJug:
		_, err = c.WaterJugProblem()
	case ProblemNQueens:
		_, err = c.NQueensProblem()
	case ProblemTilePuzzle:
		_, err = c.TilePuzzleProblem()
	default:
		err = fmt.Errorf("problem %q not in %v", c.Problem, Problems)
	}

	return err
}

// WaterJugProblem builds the jug puzzle from c.WaterJug.
func (c Config) WaterJugProblem() (*waterjug.Problem, error) {
	return waterjug.New(
		waterjug.WithCapacities(c.WaterJug.CapacityA, c.WaterJug.CapacityB),
		waterjug.WithTarget(c.WaterJug.Target),
	)
}

// NQueensProblem builds the queens puzzle from c.NQueens.
func (c Config) NQueensProblem() (*nqueens.Problem, error) {
	return nqueens.New(c.NQueens.N)
}

// TilePuzzleProblem builds the tile puzzle from c.TilePuzzle. An empty goal selects
// the ordered board of the initial state's width.
func (c Config) TilePuzzleProblem() (*tilepuzzle.Problem, error) {
	initial, err := tilepuzzle.ParseState(c.TilePuzzle.Initial)
	if err != nil {
		return nil, err
	}
	var goal tilepuzzle.State
	if strings.TrimSpace(c.TilePuzzle.Goal) == "" {
		goal, err = tilepuzzle.DefaultGoal(int(initial.Width))
	} else {
		goal, err = tilepuzzle.ParseState(c.TilePuzzle.Goal)
	}
	if err != nil {
		return nil, err
	}
	h, err := tilepuzzle.ParseHeuristic(c.TilePuzzle.Heuristic)
	if err != nil {
		return nil, err
	}

	return tilepuzzle.New(initial, goal, tilepuzzle.WithHeuristic(h))
}
