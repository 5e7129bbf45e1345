// Package rename restores file names mangled by an export/migration process, e.g. "store.ts.ts" or "package.json2.txt".
// A fixed, ordered rule set decides the new name of each file found under a root directory.
// A file is renamed only when nothing exists at its new path yet, so existing data is never overwritten.
package rename
