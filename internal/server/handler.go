package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cosq-in/memochan/internal/domain"
	"github.com/cosq-in/memochan/internal/janitor"
	"github.com/cosq-in/memochan/internal/sink"
)

// RunRequest is the request payload: {"input": {"audio_url": "..."}}.
type RunRequest struct {
	Input struct {
		AudioURL string `json:"audio_url"`
	} `json:"input"`
}

// handleRun processes exactly one job. Every temp file created for the
// invocation is destroyed before the response is written, success or not.
func (s *Server) handleRun(c *fiber.Ctx) error {
	var req RunRequest
	if err := c.BodyParser(&req); err != nil || req.Input.AudioURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No audio_url provided",
		})
	}

	ctx := c.UserContext()
	job := &domain.Job{
		ID:    uuid.New().String(),
		Mode:  domain.ModeRequest,
		State: domain.StateReceived,
	}

	jan := janitor.New(s.logger)
	defer jan.Release(ctx)

	job.State = domain.StateDownloading
	inputPath, err := s.download(ctx, req.Input.AudioURL, job.ID, jan)
	if err != nil {
		job.State = domain.StateFailed
		s.logger.Error(ctx, "Job %s: %v", job.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Download failed: %v", err),
		})
	}
	job.Source = inputPath

	result, err := s.pipeline.Run(ctx, job, jan)
	if err != nil {
		s.logger.Error(ctx, "Job %s: %v", job.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Processing failed: %v", err),
		})
	}

	job.State = domain.StateEmitting
	resp := sink.BuildResponse(result)
	job.State = domain.StateDone
	return c.JSON(resp)
}
