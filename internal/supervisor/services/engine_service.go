// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/reelmatch/reelmatch/internal/corpus"
	"github.com/reelmatch/reelmatch/internal/logging"
	"github.com/reelmatch/reelmatch/internal/recommend"
)

// EngineInitializer is the part of recommend.Engine the service drives.
type EngineInitializer interface {
	InitializeFromFiles(ctx context.Context, moviesPath, creditsPath string) (*recommend.EngineState, error)
}

// EngineService builds the similarity engine once under supervision.
//
// A successful build, or finding the engine already built, ends the service
// for good. A data load failure cannot be fixed by retrying, so it terminates
// the whole tree. Other failures, such as a canceled build, are returned for
// suture to restart.
type EngineService struct {
	engine      EngineInitializer
	moviesPath  string
	creditsPath string
	logger      zerolog.Logger
	name        string

	// done is closed after the first successful build.
	done chan struct{}
}

// NewEngineService creates the service for the given datasets.
func NewEngineService(engine EngineInitializer, moviesPath, creditsPath string) *EngineService {
	return &EngineService{
		engine:      engine,
		moviesPath:  moviesPath,
		creditsPath: creditsPath,
		logger:      logging.WithComponent("engine"),
		name:        "engine-service",
		done:        make(chan struct{}),
	}
}

// Serve implements suture.Service.
func (s *EngineService) Serve(ctx context.Context) error {
	start := time.Now()
	s.logger.Info().
		Str("movies_path", s.moviesPath).
		Str("credits_path", s.creditsPath).
		Msg("Building similarity engine")

	state, err := s.engine.InitializeFromFiles(ctx, s.moviesPath, s.creditsPath)
	switch {
	case err == nil:
		s.logger.Info().
			Int("records", state.Corpus().Len()).
			Dur("duration", time.Since(start)).
			Msg("Similarity engine ready")
		s.markDone()
		return suture.ErrDoNotRestart

	case errors.Is(err, recommend.ErrAlreadyInitialized):
		s.markDone()
		return suture.ErrDoNotRestart

	case errors.Is(err, corpus.ErrDataLoad):
		s.logger.Error().Err(err).Msg("Dataset could not be loaded; shutting down")
		return suture.ErrTerminateSupervisorTree

	default:
		s.logger.Warn().Err(err).Msg("Engine build failed")
		return err
	}
}

func (s *EngineService) markDone() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Done is closed once the engine has been built.
func (s *EngineService) Done() <-chan struct{} {
	return s.done
}

// String names the service in supervisor logs.
func (s *EngineService) String() string {
	return s.name
}
