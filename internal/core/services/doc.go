// Package services implements the assistant core: the intent catalog,
// the scoring and entity-extraction pipeline, the query processor that
// composes them, and the dispatcher that acts on the results through
// the driven ports.
package services
