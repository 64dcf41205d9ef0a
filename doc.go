// Package gammon implements the core rules of backgammon: board state kept
// in each player's own coordinate frame, legal-move candidates for a single
// die value, hitting, bar re-entry, bear-off, win detection, and seeded dice
// with an opening roll-off.
//
//	+13-14-15-16-17-18-+---+19-20-21-22-23-24-+
//	| x           o    |   | o              x |
//	| x           o    |   | o              x |
//	| x           o    |   | o                |
//	| x                |   | o                |
//	| x                |   | o                |
//	|                  |BAR|                  |
//	| o                |   | x                |
//	| o                |   | x                |
//	| o           x    |   | x                |
//	| o           x    |   | x              o |
//	| o           x    |   | x              o |
//	+12-11-10--9--8--7-+---+-6--5--4--3--2--1-+
//
// Each player addresses the board from their own side: point 0 (rendered as
// point 1) is the closest to bearing off and point 23 the farthest. Point i
// in one frame is the same physical point as 23-i in the other.
package gammon
