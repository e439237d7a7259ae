/*
Package interval is a closed-interval arithmetic library for Go.

Package ival implements the Interval type and its operations, iarray applies
them elementwise to arrays and matrices of intervals, and verify checks their
enclosure property against high-precision reference functions. The ival
command exposes these packages on the command line.
*/
package interval
