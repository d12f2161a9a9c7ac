// Package diagnostic collects the warnings and errors raised while packing
// assets.
//
// Key capabilities:
//   - Identifier collision reports naming every clashing path
//   - Empty input warnings
//   - Stale output reports for check mode
//   - Configuration validation errors
package diagnostic
