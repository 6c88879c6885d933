// Package entities holds the world documents the loot sheet service mutates:
// tokens, the actors they wrap, inventory items, permissions and the loot
// tables and populator rules that feed them.
package entities
