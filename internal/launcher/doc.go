// Package launcher builds the registry of launchable apps from a manifest
// and dispatches the one the user picks.
//
// The flow is:
//
//  1. BuildRegistry resolves every manifest entry against a Resolver and
//     keeps only those whose module implements catalog.Runner.
//  2. Launcher.Render asks a Host for a selection and a confirmation.
//  3. Dispatcher.Dispatch resolves the selected module again and calls Run
//     exactly once.
//
// The registry is built once and never mutated. Entries that fail to
// resolve are dropped with a warning rather than failing the build.
package launcher
