// meta/meta.go
package meta

// SEARCH_DEPTH defines the default number of plies searched past each candidate move.
const SEARCH_DEPTH = 4

// MAX_DEPTH defines the deepest search the agent server accepts.
const MAX_DEPTH = 7

// EVALUATION defines the default static evaluation.
const EVALUATION = "positional"

// NUM_GAMES defines the number of games per experiment match up.
const NUM_GAMES = 10

// SERVER_PORT defines the default port of the agent server.
const SERVER_PORT = 8080

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments"
