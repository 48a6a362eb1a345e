// Package score rates a single password. The rich path delegates to the
// zxcvbn estimator; when it is unavailable or fails, a crude character-pool
// heuristic takes over so callers always get an answer.
package score

import (
	"fmt"
	"math/bits"
	"unicode"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// AbsentScore marks a result with no meaningful score, e.g. for an empty
// password.
const AbsentScore = -1

// Result describes the strength of a single password
type Result struct {
	// Score is a 0..4 bucket, or AbsentScore when no password was supplied
	Score int `json:"score"`
	// Entropy is the estimated entropy in bits
	Entropy float64 `json:"entropy"`
	// Feedback holds human readable remarks about the password
	Feedback []string `json:"feedback,omitempty"`
	// CrackTimeDisplay is the rich estimator's display string, empty on the
	// fallback path
	CrackTimeDisplay string `json:"crack_time_display,omitempty"`
}

// Estimator rates a single password. Implementations may fail; the Scorer
// chain turns any failure into a fallback, never into a caller-visible error.
type Estimator interface {
	Estimate(password string) (Result, error)
}

// Scorer chains a rich estimator with the local heuristic fallback
type Scorer struct {
	rich     Estimator
	fallback Estimator
}

// NewScorer builds the default scorer: zxcvbn first, pool heuristic second
func NewScorer() *Scorer {
	return &Scorer{rich: zxcvbnEstimator{}, fallback: poolEstimator{}}
}

// NewScorerWith builds a scorer around a custom rich estimator. A nil rich
// estimator means only the fallback runs.
func NewScorerWith(rich Estimator) *Scorer {
	return &Scorer{rich: rich, fallback: poolEstimator{}}
}

// Analyze rates the password. It never fails: an empty password yields an
// absent score, and any rich estimator failure silently falls back to the
// pool heuristic.
func (s *Scorer) Analyze(password string) Result {
	if password == "" {
		return Result{
			Score:    AbsentScore,
			Entropy:  0.0,
			Feedback: []string{"no password provided"},
		}
	}
	if s.rich != nil {
		if result, err := s.rich.Estimate(password); err == nil {
			return result
		}
	}
	result, _ := s.fallback.Estimate(password)
	return result
}

type zxcvbnEstimator struct{}

// Estimate delegates to zxcvbn. The library does not return errors, so the
// only failure mode worth guarding against is a panic on unexpected input.
func (zxcvbnEstimator) Estimate(password string) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("zxcvbn estimator failed: %v", r)
		}
	}()
	strength := zxcvbn.PasswordStrength(password, nil)
	result = Result{
		Score:            strength.Score,
		Entropy:          strength.Entropy,
		CrackTimeDisplay: strength.CrackTimeDisplay,
	}
	return result, nil
}

type poolEstimator struct{}

// Estimate applies the crude character-pool heuristic: sum the pool sizes
// of the character classes present, then use the pool's bit length as bits
// per character. The bit-length proxy understates log2 of the pool but the
// bucket thresholds were tuned against it, so both are kept as-is.
func (poolEstimator) Estimate(password string) (Result, error) {
	pool := poolSize(password)
	entropy := float64(len(password) * bits.Len(uint(pool)))
	return Result{
		Score:    bucket(entropy),
		Entropy:  entropy,
		Feedback: feedback(password),
	}, nil
}

func poolSize(password string) int {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}
	pool := 0
	if hasLower {
		pool += 26
	}
	if hasUpper {
		pool += 26
	}
	if hasDigit {
		pool += 10
	}
	if hasOther {
		pool += 32
	}
	return pool
}

func bucket(entropy float64) int {
	switch {
	case entropy < 28:
		return 0
	case entropy < 36:
		return 1
	case entropy < 60:
		return 2
	case entropy < 90:
		return 3
	default:
		return 4
	}
}

func feedback(password string) []string {
	var remarks []string
	if len(password) < 12 {
		remarks = append(remarks, "use at least 12 characters")
	}
	if poolSize(password) < 62 {
		remarks = append(remarks, "mix upper and lower case letters, digits and symbols")
	}
	return remarks
}
