package venuescript

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var routerKeywords = []string{"COLLATERAL", "PORTFOLIO_MARGIN", "CAP_TTL", "RESERVATION_BATCH", "CAP"}
var slabKeywords = []string{"MAKER_CLASS", "MATCHING", "FEE", "RISK", "ANTI_TOXICITY", "BATCH_WINDOW", "ORACLE_LINK"}
var oracleKeywords = []string{"HEARTBEAT", "KILL_BAND_SYNC"}
var blockKeywords = []string{"ROUTER", "SLAB", "ORACLE"}

// suggest returns the closest candidate to target by fuzzy rank, or the
// empty string if no candidate is a plausible match.
func suggest(target string, candidates []string) string {
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Stable(ranks)
	return ranks[0].Target
}
