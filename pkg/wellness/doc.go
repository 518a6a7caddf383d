// Package wellness derives aggregate views from a snapshot of mood records
// and weekly insights.
//
// Every function in this package is a pure function of its arguments: no
// I/O, no logging, no retained state. Callers fetch a snapshot, describe the
// date window and time zone in a Query, and call ComputeViews. Malformed
// input never fails a computation; an unrecognized category scores 0 and is
// left out of the distribution, an undated record never matches a bounded
// window, and an inverted window yields empty views.
package wellness
