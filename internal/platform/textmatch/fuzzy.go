package textmatch

import "strings"

// MatchThreshold is the minimum length ratio a contained candidate must
// exceed (strictly) to be accepted by BestMatch.
const MatchThreshold = 0.5

// MatchResult is the outcome of BestMatch. Candidate keeps the original,
// non-normalized spelling so callers can look it up again verbatim.
type MatchResult struct {
	Candidate string
	Score     float64
	Found     bool
}

// Contains reports whether either normalized string contains the other.
// Both arguments must already be normalized.
func Contains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// BestMatch picks the candidate whose normalized form contains, or is
// contained by, the normalized query with the highest shorter/longer length
// ratio. Ties keep the first candidate seen. A query that normalizes to ""
// is contained by every candidate, so callers should reject blank input
// before calling.
func BestMatch(query string, candidates []string) MatchResult {
	q := Normalize(query)

	best := MatchResult{}
	for _, candidate := range candidates {
		c := Normalize(candidate)
		if !Contains(c, q) {
			continue
		}

		score, ok := lengthRatio(q, c)
		if !ok {
			continue
		}
		if score > best.Score {
			best.Score = score
			best.Candidate = candidate
		}
	}

	if best.Score > MatchThreshold {
		best.Found = true
		return best
	}

	return MatchResult{Score: best.Score}
}

func lengthRatio(a, b string) (float64, bool) {
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 0, false
	}

	return float64(shorter) / float64(longer), true
}
