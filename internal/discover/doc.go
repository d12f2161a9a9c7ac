// Package discover enumerates the asset files to pack.
//
// The asset tree is walked recursively and every file whose extension is in
// the configured set is returned, de-duplicated and sorted so the generated
// header is reproducible regardless of filesystem traversal order. Hidden
// files and directories (names starting with ".") are skipped.
package discover
