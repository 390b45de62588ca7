// Package boxeatsplants implements the Box Eats Plants board. Each tile holds
// at most one box, one plant and one rock; pieces move one tile at a time.
package boxeatsplants
