package utils

// ResolveWinner determines the winner of a completed duel from the two
// players' final totals. The ordering is total and deterministic so that
// concurrent finalization attempts always agree on the result:
//  1. the higher score wins
//  2. on equal scores, the lower cumulative response time wins
//  3. on equal scores and times, the duel is a draw (nil)
func ResolveWinner(challengerID, opponentID string, challengerScore, opponentScore int, challengerTimeMs, opponentTimeMs int64) *string {
	if challengerScore > opponentScore {
		return &challengerID
	}
	if opponentScore > challengerScore {
		return &opponentID
	}

	if challengerTimeMs < opponentTimeMs {
		return &challengerID
	}
	if opponentTimeMs < challengerTimeMs {
		return &opponentID
	}

	return nil
}
