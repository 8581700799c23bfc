package base

const placementNextRow rune = '/'

// ConvertPieceFromRune maps a placement letter to its piece identity. Upper
// case is white, lower case is black.
func ConvertPieceFromRune(r rune) (Color, Type, bool) {
	switch r {
	case 'K':
		return White, King, true
	case 'Q':
		return White, Queen, true
	case 'R':
		return White, Rook, true
	case 'B':
		return White, Bishop, true
	case 'N':
		return White, Knight, true
	case 'P':
		return White, Pawn, true
	case 'k':
		return Black, King, true
	case 'q':
		return Black, Queen, true
	case 'r':
		return Black, Rook, true
	case 'b':
		return Black, Bishop, true
	case 'n':
		return Black, Knight, true
	case 'p':
		return Black, Pawn, true
	default:
		return White, NoType, false
	}
}

// ConvertRuneFromPiece is the letter used by the board dump.
// Knights share the king letter ('K' and 'k'); the dump format depends on it.
func ConvertRuneFromPiece(p Piece) rune {
	switch p.Color() {
	case White:
		switch p.Type() {
		case King:
			return 'K'
		case Queen:
			return 'Q'
		case Rook:
			return 'R'
		case Bishop:
			return 'B'
		case Knight:
			return 'K'
		case Pawn:
			return 'P'
		}
	case Black:
		switch p.Type() {
		case King:
			return 'k'
		case Queen:
			return 'q'
		case Rook:
			return 'r'
		case Bishop:
			return 'b'
		case Knight:
			return 'k'
		case Pawn:
			return 'p'
		}
	}
	return '?'
}

func isPlacementDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
