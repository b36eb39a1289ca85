// Package catalog holds the named shapes produced by one evaluation of a
// shape script. A catalog is built once and then only read.
package catalog
