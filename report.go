package wordforge

import (
	"time"

	"github.com/google/uuid"
)

// Metrics records the counters collected during one generation run
type Metrics struct {
	// NumTokens is the number of tokens that survived cleaning
	NumTokens int `json:"tokens" yaml:"tokens"`
	// NumSkipped is the number of tokens dropped as empty after trimming
	NumSkipped int `json:"skipped" yaml:"skipped"`
	// NumGenerated is the size of the candidate set before the cap
	NumGenerated int `json:"generated" yaml:"generated"`
	// NumTruncated is the number of candidates dropped by the size cap
	NumTruncated int `json:"truncated" yaml:"truncated"`
}

// ReportInfo describes the result of a generation run
type ReportInfo struct {
	RunID            string    `json:"run_id" yaml:"run_id"`
	GeneratedAt      time.Time `json:"generated_at" yaml:"generated_at"`
	WordforgeVersion string    `json:"wordforge_version,omitempty" yaml:"wordforge_version,omitempty"`
	Stats            *Metrics  `json:"stats" yaml:"stats"`
	Candidates       []string  `json:"candidates" yaml:"candidates"`
}

// NewReportInfo instantiate a ReportInfo
func NewReportInfo(candidates []string, metrics *Metrics) *ReportInfo {
	return &ReportInfo{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Stats:       metrics,
		Candidates:  candidates,
	}
}

// WithVersion defines the version of wordforge used to generate the report
func (r *ReportInfo) WithVersion(version string) *ReportInfo {
	r.WordforgeVersion = version
	return r
}
