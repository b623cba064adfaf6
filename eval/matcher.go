package eval

import (
	"sort"

	ashwam "github.com/Nirmitk1311/ASHWAM"
)

// Match pairs one predicted object with one gold object plus the similarity
// that produced the pairing. Within an entry each object appears in at most
// one Match.
type Match struct {
	Predicted ashwam.SemanticObject `json:"predicted"`
	Gold      ashwam.SemanticObject `json:"gold"`
	Score     float64               `json:"score"`
	PredIndex int                   `json:"pred_index"`
	GoldIndex int                   `json:"gold_index"`
}

// candidate is a same-domain pair whose span overlap cleared the threshold.
type candidate struct {
	score   float64
	predIdx int
	goldIdx int
}

// matchObjects produces the one-to-one pairing for a single entry.
//
// Candidates are generated for every (predicted, gold) pair that shares a
// domain and whose token-set Jaccard clears the threshold, then sorted by
// score descending and consumed greedily. Ties are broken by predicted list
// index, then gold list index, so results are reproducible regardless of
// map iteration or input shuffling within equal scores.
//
// Returns the accepted matches plus the residual predicted indexes (false
// positives) and residual gold indexes (false negatives), both in original
// list order.
func matchObjects(predicted, gold []ashwam.SemanticObject, cfg ashwam.Config) (matches []Match, fpIdx, fnIdx []int) {
	predTokens := make([]tokenSet, len(predicted))
	for i, p := range predicted {
		predTokens[i] = tokenize(p.EvidenceSpan, cfg.StripPunctuation)
	}
	goldTokens := make([]tokenSet, len(gold))
	for i, g := range gold {
		goldTokens[i] = tokenize(g.EvidenceSpan, cfg.StripPunctuation)
	}

	var candidates []candidate
	for pi, p := range predicted {
		for gi, g := range gold {
			if p.Domain != g.Domain {
				continue
			}
			s := jaccard(predTokens[pi], goldTokens[gi])
			if s >= cfg.JaccardThreshold {
				candidates = append(candidates, candidate{score: s, predIdx: pi, goldIdx: gi})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].predIdx != candidates[j].predIdx {
			return candidates[i].predIdx < candidates[j].predIdx
		}
		return candidates[i].goldIdx < candidates[j].goldIdx
	})

	usedPred := make([]bool, len(predicted))
	usedGold := make([]bool, len(gold))
	for _, c := range candidates {
		if usedPred[c.predIdx] || usedGold[c.goldIdx] {
			continue
		}
		usedPred[c.predIdx] = true
		usedGold[c.goldIdx] = true
		matches = append(matches, Match{
			Predicted: predicted[c.predIdx],
			Gold:      gold[c.goldIdx],
			Score:     c.score,
			PredIndex: c.predIdx,
			GoldIndex: c.goldIdx,
		})
	}

	for i := range predicted {
		if !usedPred[i] {
			fpIdx = append(fpIdx, i)
		}
	}
	for i := range gold {
		if !usedGold[i] {
			fnIdx = append(fnIdx, i)
		}
	}
	return matches, fpIdx, fnIdx
}
