package catalogfile

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jobpulse/pulse/internal/domain"
	"github.com/jobpulse/pulse/internal/logger"
)

// Mapper converts catalog file records into domain.Job values.
type Mapper struct {
	validate *validator.Validate
	logger   logger.Logger
}

// NewMapper creates a mapper instance.
func NewMapper(log logger.Logger) *Mapper {
	return &Mapper{
		validate: validator.New(),
		logger:   log,
	}
}

// MapJobs validates every record and returns the resulting jobs in file
// order. Invalid records are skipped with a warning, never fatal; an error is
// returned only when the file yields no usable job at all.
func (m *Mapper) MapJobs(file File) ([]domain.Job, error) {
	jobs := make([]domain.Job, 0, len(file.Jobs))

	for i, record := range file.Jobs {
		if err := m.validate.Struct(record); err != nil {
			m.logger.Warn("skipping invalid catalog record",
				logger.Int("index", i),
				logger.String("id", record.ID),
				logger.Error(err))
			continue
		}

		jobs = append(jobs, domain.Job{
			ID:            record.ID,
			Title:         record.Title,
			Company:       record.Company,
			Location:      record.Location,
			Mode:          domain.WorkMode(record.Mode),
			Experience:    record.Experience,
			Description:   record.Description,
			Skills:        record.Skills,
			SalaryRange:   record.SalaryRange,
			Source:        record.Source,
			PostedDaysAgo: record.PostedDaysAgo,
			ApplyURL:      record.ApplyURL,
		})
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("no valid jobs found in catalog file")
	}

	return jobs, nil
}
