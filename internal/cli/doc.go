// Package cli implements the linguaspark command tree:
//
//	serve      HTTP API over a Manager
//	translate  one-shot translation from args or stdin
//	models     list pairs found under --models-dir
//	config     print the native config synthesized for a model dir
//	cache      list or purge the SQLite translation cache
//
// Options resolve as flags over the --config file over LINGUASPARK_* env.
package cli
