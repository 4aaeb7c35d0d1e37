// Package quantity parses, scales, converts and aggregates free-form
// ingredient amounts ("1 1/2 cups", "2,5 EL", "to taste").
//
// Every function is total: text that cannot be handled safely is returned
// as written rather than guessed at.
package quantity
