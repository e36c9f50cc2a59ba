package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Harsha51888/attendance-tracker/internal/attendance"
	"github.com/Harsha51888/attendance-tracker/internal/model"
	"github.com/Harsha51888/attendance-tracker/internal/store"
)

// SubjectService combines the subject store with the attendance
// calculator: reads come back annotated with the computed figures,
// writes pass through to the store.
type SubjectService struct {
	subjects  *store.SubjectStore
	threshold int
	log       zerolog.Logger
}

func NewSubjectService(subjects *store.SubjectStore, threshold int, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjects:  subjects,
		threshold: threshold,
		log:       log.With().Str("component", "subject_service").Logger(),
	}
}

// Threshold returns the configured safe-attendance percentage.
func (s *SubjectService) Threshold() int {
	return s.threshold
}

// List returns every tracked subject with percentage, safety status and
// the required/bunkable class counts against the configured threshold.
func (s *SubjectService) List(ctx context.Context) ([]model.SubjectReport, error) {
	subjects, err := s.subjects.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load subject list")
		return nil, err
	}

	reports := make([]model.SubjectReport, 0, len(subjects))
	for _, sub := range subjects {
		reports = append(reports, model.SubjectReport{
			Subject:         sub,
			Percentage:      attendance.Percentage(sub.Attended, sub.Total),
			Safe:            attendance.IsSafe(sub.Attended, sub.Total, s.threshold),
			ClassesToAttend: attendance.ClassesToAttend(sub.Attended, sub.Total, s.threshold),
			ClassesBunkable: attendance.ClassesBunkable(sub.Attended, sub.Total, s.threshold),
		})
	}
	return reports, nil
}

// Add appends a new subject built from the request.
func (s *SubjectService) Add(ctx context.Context, req model.CreateSubjectRequest) (model.Subject, error) {
	sub := model.Subject{
		Name:     req.Name,
		Credits:  req.Credits,
		Attended: req.Attended,
		Total:    req.Total,
	}
	if err := s.subjects.Append(ctx, sub); err != nil {
		return model.Subject{}, err
	}
	return sub, nil
}

// MarkClass records one held class for the subject at position. Total
// always goes up by one; attended only when the class was attended.
func (s *SubjectService) MarkClass(ctx context.Context, position int, attended bool) error {
	return s.subjects.UpdateByPosition(ctx, position, attended)
}

// Remove deletes the subject at position.
func (s *SubjectService) Remove(ctx context.Context, position int) error {
	return s.subjects.RemoveByPosition(ctx, position)
}
