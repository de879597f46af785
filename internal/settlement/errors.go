package settlement

import "errors"

var (
	ErrNoPicker        = errors.New("no picker selected")
	ErrInactivePicker  = errors.New("picker is not playing this hand")
	ErrInactivePartner = errors.New("partner is not playing this hand")
	ErrTableSize       = errors.New("hand needs exactly five active players")
	ErrWagerOutOfRange = errors.New("wagered pot count out of range")
	ErrInvalidVerdict  = errors.New("invalid verdict")
	ErrInvalidGrade    = errors.New("invalid grade")
	ErrInvalidCrack    = errors.New("invalid crack level")
)
