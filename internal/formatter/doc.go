// Package formatter turns raw order-book levels into the values the book table
// shows: sizes converted into the quote currency, running totals, bar widths
// and the bid-ask spread percentage.
//
// Every function here is pure. Callers pass the snapshot in explicitly and get
// new rows back; input slices are never modified.
package formatter
