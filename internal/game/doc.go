// Package game holds the table state shared by every Sheepshead hand: the
// player roster, the carried-over pot ledger, the stakes and the dealer
// rotation that decides who sits out.
//
// # Roster
//
// Players keep their seat order for the whole session. IDs are assigned as one
// more than the highest existing ID and are never reused while the player is
// seated:
//
//	players := game.DefaultPlayers()
//	players, p, err := game.AddPlayer(players, "Frank")
//
// # Pot Ledger
//
// The pot is an ordered list of positive entries. Passed hands and matched
// losses append entries; a winning wager consumes entries from the front:
//
//	var pot game.Pot
//	pot.Append(decimal.RequireFromString("1.25"))
//	won, _ := pot.ConsumeLeading(1)
//
// # Rotation
//
// The table plays five-handed. With six or more seated players the dealer
// sits out, and with seven or more further players sit out as well. Two
// strategies are available through SitOutMode: SitOutWindow recomputes the
// active set from the dealer position every time, SitOutSwap reproduces the
// older incremental swap of the outgoing and incoming dealer.
package game
