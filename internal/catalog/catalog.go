package catalog

import (
	"sync"
	"time"

	"github.com/jobpulse/pulse/internal/domain"
)

// Catalog is the in-memory, read-mostly set of job postings.
//
// It is populated once at startup from the catalog file and never mutated
// afterwards; the RWMutex exists because HTTP handlers read it concurrently.
// Iteration order is the file's load order, which keeps scoring sweeps and
// digest tie-breaking deterministic across calls.
type Catalog struct {
	mu       sync.RWMutex
	byID     map[string]domain.Job
	order    []string
	loadedAt time.Time
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		byID: make(map[string]domain.Job),
	}
}

// Replace swaps in a full set of jobs. Duplicate IDs keep the first record.
func (c *Catalog) Replace(jobs []domain.Job) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID = make(map[string]domain.Job, len(jobs))
	c.order = make([]string, 0, len(jobs))
	for _, job := range jobs {
		if _, seen := c.byID[job.ID]; seen {
			continue
		}
		c.byID[job.ID] = job
		c.order = append(c.order, job.ID)
	}
	c.loadedAt = time.Now()
}

// Get retrieves a job by ID.
func (c *Catalog) Get(id string) (domain.Job, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	job, ok := c.byID[id]
	return job, ok
}

// All returns every job in load order.
func (c *Catalog) All() []domain.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	jobs := make([]domain.Job, 0, len(c.order))
	for _, id := range c.order {
		jobs = append(jobs, c.byID[id])
	}
	return jobs
}

// Count returns the number of jobs in the catalog.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// LoadedAt returns when the catalog was last populated.
func (c *Catalog) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loadedAt
}
