// Package display holds the pure formatting transforms behind Rumbo's
// user-facing fields: phone grouping with cursor mapping, star rating tiers,
// avatar initials and Spanish long dates.
//
// Every function is deterministic and side-effect free, so components call
// them on each render instead of caching results.
package display
