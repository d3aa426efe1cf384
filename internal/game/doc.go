// Package game implements the finger-counting rules of ChopStix.
//
// Each player owns a pair of Hands, and every Hand holds between zero and
// four fingers. Fingers wrap modulo five, so a hand that would reach five
// becomes a fist.
//
// # Basic Usage
//
// Tap one hand onto an opponent's hand:
//
//	us, them := game.NewHands(), game.NewHands()
//	if err := game.Apply(game.TapLL, us, them); err != nil {
//	    // errors.Is(err, game.ErrMoveNotAllowed)
//	}
//
// Parse a human move first when the input is text:
//
//	m, err := game.ParseMove(" lr ")
//
// # Matches
//
// Match keeps the turn order, the Score and the per-game move count for an
// interactive session between a human and a Strategy. Both the console and
// the TUI front-ends drive a Match.
package game
