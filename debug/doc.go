// Package debug holds debugging switches read from the environment.
//
//	PLIST_DEBUG_PARSE   report parse failures
//	PLIST_DEBUG_DECODE  trace record decoding
//	PLIST_DEBUG_ENCODE  trace record encoding
//	PLIST_DEBUG_PATCH   trace json patch application
//	PLIST_DEBUG_EVAL    trace query compilation
//	PLIST_DEBUG_MATCH   trace pattern matching
package debug
