// Package domain contains the core types of the skill matcher: canonical
// skills, skill sets and the outcome of a single résumé analysis. They are
// shared by the analyzer, the HTTP layer and the CLI, and know how to encode
// themselves as JSON.
package domain
