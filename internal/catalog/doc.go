// Package catalog holds the compiled-in modules a manifest can refer to.
//
// A module is addressed by a dotted path such as "demo.hello". Resolution
// finds the top-level unit among the catalog's roots and then descends
// member by member through each remaining segment, the same way an
// attribute chain would be followed. Any module that implements Namespace
// can be descended into; *Package is the map-backed namespace created by
// Register for intermediate segments.
//
// A module is launchable when it implements Runner. That check is a type
// assertion performed at startup rather than a symbol probe.
package catalog
