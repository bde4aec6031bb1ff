// Package navigation holds the section selection of a browser session and
// routes form submissions to the active section's controller.
package navigation

import (
	"context"
	"sync"

	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

// StagedInput summarizes the submitted form without image bytes.
type StagedInput struct {
	Text          string `json:"text,omitempty"`
	ImageName     string `json:"imageName,omitempty"`
	ImageType     string `json:"imageType,omitempty"`
	ImageBytes    int    `json:"imageBytes,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	AddToCalendar bool   `json:"addToCalendar,omitempty"`
}

// State is what the page shows for the selected section.
type State struct {
	Selected SectionInfo  `json:"selected"`
	Staged   *StagedInput `json:"staged,omitempty"`
	Output   *Output      `json:"output,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// Shell owns the single selected section of one session. Runs are
// serialized, so a slow provider blocks only this session.
type Shell struct {
	mu          sync.Mutex
	controllers Controllers
	selected    Section
	staged      *StagedInput
	output      *Output
	errMessage  string
}

// NewShell starts on the first section.
func NewShell(controllers Controllers) *Shell {
	return &Shell{controllers: controllers, selected: sections[0].ID}
}

// Select switches sections. Switching discards the previous section's input and result.
func (s *Shell) Select(section Section) error {
	if _, ok := infoFor(section); !ok {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "unknown section "+string(section), nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectLocked(section)
	return nil
}

// Dispatch selects section and runs its controller with in.
func (s *Shell) Dispatch(ctx context.Context, section Section, in Input) (Output, error) {
	info, ok := infoFor(section)
	if !ok {
		return Output{}, apperrors.Wrap(apperrors.CodeInvalidInput, "unknown section "+string(section), nil)
	}
	controller, ok := s.controllers[section]
	if !ok {
		return Output{}, apperrors.Wrap(apperrors.CodeInvalidInput, "section "+string(section)+" is not available", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectLocked(section)
	s.staged = summarize(in)
	s.output = nil
	s.errMessage = ""

	out, err := controller.Run(ctx, in)
	if err != nil {
		s.errMessage = err.Error()
		return Output{}, err
	}
	out.Section = section
	out.Heading = info.Heading
	s.output = &out
	return out, nil
}

// State returns a copy of the selected section's state.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, _ := infoFor(s.selected)
	state := State{Selected: info, Error: s.errMessage}
	if s.staged != nil {
		staged := *s.staged
		state.Staged = &staged
	}
	if s.output != nil {
		out := *s.output
		state.Output = &out
	}
	return state
}

func (s *Shell) selectLocked(section Section) {
	if s.selected == section {
		return
	}
	s.selected = section
	s.staged = nil
	s.output = nil
	s.errMessage = ""
}

func summarize(in Input) *StagedInput {
	staged := &StagedInput{
		Text:          in.Text,
		StartDate:     in.StartDate,
		AddToCalendar: in.AddToCalendar,
	}
	if in.Image != nil {
		staged.ImageName = in.Image.Filename
		staged.ImageType = in.Image.DeclaredType
		staged.ImageBytes = len(in.Image.Data)
	}
	return staged
}
