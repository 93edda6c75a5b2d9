/*

Command pprl is the CLI surface over this module's four logical
operations: transform, mask, match, and estimate.

Each subcommand reads a YAML job file describing its input and
configuration, and writes its result as YAML to stdout (or a file, via
-out). estimate is a stub: sizing heuristics and synthetic-data
generators are out of scope for this module, so it reports that rather
than silently producing a misleading number.

mask additionally accepts -snapshot, writing a canonical CBOR artifact
pairing the job file as parsed (blank entity IDs filled) with its output, for later
diffing between runs.

Logging is structured via zap and configured through environment
variables (optionally loaded from a .env file), following the same
envconfig/godotenv pattern as this module's sibling CLI tools.

*/
package main
