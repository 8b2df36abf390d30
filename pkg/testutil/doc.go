// Package testutil provides utilities for testing chezconf components.
//
// Key components:
//   - TestEnvironment: isolates HOME, the XDG directories and CHEZCONF_*
//     variables, and knows where the chezmoi config and template live
//   - WithConfig / WithTemplate: seed inputs inline
//   - ReadConfig: parse what a run saved
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only when file modes or the real
//     OS behavior matter
//   - All test data should be defined inline, not in external files
package testutil
