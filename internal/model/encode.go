package model

// DefaultMoveBase is the conventional encoding offset. It is only valid for
// boards with fewer than 99 cells; larger boards need a base above n^d.
const DefaultMoveBase = 99

// EncodeCell encodes a placement as a signed board value. Player 0 is
// positive, player 1 negative; the magnitude carries the player's move
// order (1st, 2nd, ...) offset by base. Zero is never produced since
// order >= 1.
func EncodeCell(player, order, base int) int {
	v := order + base
	if player == 1 {
		return -v
	}
	return v
}

// DecodeCell recovers the player and move order from a board value.
// played is false for an unplayed cell, in which case player and order
// are meaningless.
func DecodeCell(v, base int) (player, order int, played bool) {
	if v > base {
		return 0, v - base, true
	}
	if v < -base {
		return 1, -v - base, true
	}
	return 0, 0, false
}
