// Package server serves match-3 games over socket.io. Every connected socket
// owns one matchsession.Session, created on connect and dropped on
// disconnect.
//
// Inbound events are new_game, swap {x1,y1,x2,y2} and board. The server
// answers with board (the session view), swap_result {result, board} or
// game_error {message}.
package server
