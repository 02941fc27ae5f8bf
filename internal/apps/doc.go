// Package apps holds the sub-applications compiled into dashlaunch and
// registers them in a catalog under the paths a manifest refers to.
package apps
